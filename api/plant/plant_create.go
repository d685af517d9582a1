package plant

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"
	"plants/service/img_ser"
	"plants/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type PlantCreateRequest struct {
	Name        string `form:"name" validate:"required,min=1,max=100"`
	Description string `form:"description" validate:"max=5000"`
	Usage       string `form:"usage" validate:"max=5000"`
	Precautions string `form:"precautions" validate:"max=5000"`
	DiseaseIDs  []uint `form:"disease_ids"`
}

func (p *Plant) PlantCreate(c *gin.Context) {
	var req PlantCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		global.Log.Error("c.ShouldBind() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	// 先解析疾病ID和检查重名，再保存图片，避免校验失败留下孤儿文件
	diseases, err := models.DiseaseFindAllByIDs(req.DiseaseIDs)
	if err != nil {
		if errors.Is(err, models.ErrDiseaseNotFound) {
			res.Error(c, res.DiseaseNotFound, "疾病不存在")
			return
		}
		global.Log.Error("models.DiseaseFindAllByIDs() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查找疾病失败")
		return
	}

	exists, err := models.PlantExistsByName(req.Name)
	if err != nil {
		global.Log.Error("models.PlantExistsByName() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "检查植物存在性失败")
		return
	}
	if exists {
		res.Error(c, res.PlantAlreadyExists, "植物已存在")
		return
	}

	var imagePath string
	if file, err := c.FormFile("image"); err == nil && file != nil {
		imagePath, err = img_ser.Store(file, img_ser.FolderPlant)
		if err != nil {
			global.Log.Error("img_ser.Store() failed", zap.String("error", err.Error()))
			res.Error(c, res.FileUploadFailed, err.Error())
			return
		}
	}

	plant := models.PlantModel{
		Name:        req.Name,
		Description: req.Description,
		Usage:       req.Usage,
		Precautions: req.Precautions,
		Image:       imagePath,
	}
	if err := models.PlantCreate(&plant, diseases); err != nil {
		if imagePath != "" {
			if delErr := img_ser.Delete(imagePath); delErr != nil {
				global.Log.Error("img_ser.Delete() failed", zap.String("error", delErr.Error()))
			}
		}
		if errors.Is(err, models.ErrPlantExists) {
			res.Error(c, res.PlantAlreadyExists, "植物已存在")
			return
		}
		global.Log.Error("models.PlantCreate() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建植物失败")
		return
	}

	global.Log.Info("创建植物成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, plant)
}
