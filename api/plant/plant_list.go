package plant

import (
	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (p *Plant) PlantList(c *gin.Context) {
	var page models.PageInfo
	if err := c.ShouldBindQuery(&page); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	page.Normalize()

	plants, total, err := models.PlantList(page)
	if err != nil {
		global.Log.Error("models.PlantList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取植物列表失败")
		return
	}

	res.SuccessWithPage(c, plants, total, page.Page, page.PageSize)
}

func (p *Plant) PlantListAll(c *gin.Context) {
	plants, err := models.PlantListAll()
	if err != nil {
		global.Log.Error("models.PlantListAll() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取植物列表失败")
		return
	}

	res.Success(c, plants)
}
