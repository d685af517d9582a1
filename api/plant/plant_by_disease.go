package plant

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlantByDiseaseNameRequest struct {
	DiseaseName string `form:"disease_name" binding:"required"`
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
}

// PlantsByDiseaseName 按疾病名称查关联植物，未知疾病返回空页
func (p *Plant) PlantsByDiseaseName(c *gin.Context) {
	var req PlantByDiseaseNameRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	page := models.PageInfo{Page: req.Page, PageSize: req.PageSize}
	page.Normalize()

	plants, total, err := models.PlantsByDiseaseName(req.DiseaseName, page)
	if err != nil {
		global.Log.Error("models.PlantsByDiseaseName() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "按疾病查找植物失败")
		return
	}

	res.SuccessWithPage(c, plants, total, page.Page, page.PageSize)
}

type PlantByDiseaseIDRequest struct {
	ID uint `uri:"id" binding:"required,gt=0"`
}

// PlantsByDiseaseID 按疾病ID查关联植物，疾病必须存在
func (p *Plant) PlantsByDiseaseID(c *gin.Context) {
	var req PlantByDiseaseIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	var page models.PageInfo
	if err := c.ShouldBindQuery(&page); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	page.Normalize()

	if _, err := models.DiseaseFindByID(req.ID); err != nil {
		if errors.Is(err, models.ErrDiseaseNotFound) {
			res.Error(c, res.DiseaseNotFound, "疾病不存在")
			return
		}
		global.Log.Error("models.DiseaseFindByID() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查找疾病失败")
		return
	}

	plants, total, err := models.PlantsByDiseaseID(req.ID, page)
	if err != nil {
		global.Log.Error("models.PlantsByDiseaseID() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "按疾病查找植物失败")
		return
	}

	res.SuccessWithPage(c, plants, total, page.Page, page.PageSize)
}
