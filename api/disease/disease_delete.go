package disease

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DiseaseDeleteRequest struct {
	ID uint `uri:"id" binding:"required,gt=0"`
}

func (d *Disease) DiseaseDelete(c *gin.Context) {
	var req DiseaseDeleteRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	disease, err := models.DiseaseFindByID(req.ID)
	if err != nil {
		if errors.Is(err, models.ErrDiseaseNotFound) {
			res.Error(c, res.DiseaseNotFound, "疾病不存在")
			return
		}
		global.Log.Error("models.DiseaseFindByID() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查找疾病失败")
		return
	}

	if err := disease.Delete(); err != nil {
		global.Log.Error("disease.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除疾病失败")
		return
	}

	global.Log.Info("删除疾病成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, disease)
}
