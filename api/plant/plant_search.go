package plant

import (
	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlantSearch 名称子串搜索，分页返回
func (p *Plant) PlantSearch(c *gin.Context) {
	var page models.PageInfo
	if err := c.ShouldBindQuery(&page); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	page.Normalize()

	plants, total, err := models.PlantSearch(page.Key, page)
	if err != nil {
		global.Log.Error("models.PlantSearch() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "搜索植物失败")
		return
	}

	res.SuccessWithPage(c, plants, total, page.Page, page.PageSize)
}

// PlantSearchAll 名称子串搜索，一次性返回全部命中
func (p *Plant) PlantSearchAll(c *gin.Context) {
	key := c.Query("key")

	plants, err := models.PlantSearchAll(key)
	if err != nil {
		global.Log.Error("models.PlantSearchAll() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "搜索植物失败")
		return
	}

	res.Success(c, plants)
}
