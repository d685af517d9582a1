package disease

import (
	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (d *Disease) DiseaseList(c *gin.Context) {
	var page models.PageInfo
	if err := c.ShouldBindQuery(&page); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	page.Normalize()

	diseases, total, err := models.DiseaseList(page)
	if err != nil {
		global.Log.Error("models.DiseaseList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取疾病列表失败")
		return
	}

	res.SuccessWithPage(c, diseases, total, page.Page, page.PageSize)
}
