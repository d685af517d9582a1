package disease

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"
	"plants/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type DiseaseUpdateRequest struct {
	ID   uint   `json:"-" uri:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (d *Disease) DiseaseUpdate(c *gin.Context) {
	var req DiseaseUpdateRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
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

	// 改名检查新名称是否被占用
	if req.Name != disease.Name {
		if _, err := models.DiseaseFindByName(req.Name); err == nil {
			res.Error(c, res.DiseaseAlreadyExists, "疾病名称已被占用")
			return
		} else if !errors.Is(err, models.ErrDiseaseNotFound) {
			global.Log.Error("models.DiseaseFindByName() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "查找疾病失败")
			return
		}
	}

	if _, err := disease.Update(req.Name); err != nil {
		global.Log.Error("disease.Update() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新疾病失败")
		return
	}

	global.Log.Info("更新疾病成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, disease)
}
