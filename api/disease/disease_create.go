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

type DiseaseCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (d *Disease) DiseaseCreate(c *gin.Context) {
	var req DiseaseCreateRequest
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

	disease := models.DiseaseModel{Name: req.Name}
	if err := models.DiseaseCreate(&disease); err != nil {
		if errors.Is(err, models.ErrDiseaseExists) {
			res.Error(c, res.DiseaseAlreadyExists, "疾病已存在")
			return
		}
		global.Log.Error("models.DiseaseCreate() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建疾病失败")
		return
	}

	global.Log.Info("创建疾病成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, disease)
}
