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

type PlantUpdateRequest struct {
	ID          uint   `form:"id" uri:"id" validate:"required,gt=0"`
	Name        string `form:"name" validate:"omitempty,min=1,max=100"`
	Description string `form:"description" validate:"max=5000"`
	Usage       string `form:"usage" validate:"max=5000"`
	Precautions string `form:"precautions" validate:"max=5000"`
	DiseaseIDs  []uint `form:"disease_ids"`
}

func (p *Plant) PlantUpdate(c *gin.Context) {
	var req PlantUpdateRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
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

	plant, err := models.PlantFindByID(req.ID)
	if err != nil {
		if errors.Is(err, models.ErrPlantNotFound) {
			res.Error(c, res.PlantNotFound, "植物不存在")
			return
		}
		global.Log.Error("models.PlantFindByID() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查找植物失败")
		return
	}

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

	// 改名时检查新名称是否被占用
	if req.Name != "" && req.Name != plant.Name {
		exists, err := models.PlantExistsByName(req.Name)
		if err != nil {
			global.Log.Error("models.PlantExistsByName() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "检查植物存在性失败")
			return
		}
		if exists {
			res.Error(c, res.PlantAlreadyExists, "植物名称已被占用")
			return
		}
	}

	oldImage := plant.Image
	var newImage string
	if file, err := c.FormFile("image"); err == nil && file != nil {
		newImage, err = img_ser.Store(file, img_ser.FolderPlant)
		if err != nil {
			global.Log.Error("img_ser.Store() failed", zap.String("error", err.Error()))
			res.Error(c, res.FileUploadFailed, err.Error())
			return
		}
	}

	updates := models.PlantUpdates{
		Name:        req.Name,
		Description: req.Description,
		Usage:       req.Usage,
		Precautions: req.Precautions,
		Image:       newImage,
	}
	changed, err := plant.ApplyUpdates(updates, diseases)
	if err != nil {
		if newImage != "" {
			if delErr := img_ser.Delete(newImage); delErr != nil {
				global.Log.Error("img_ser.Delete() failed", zap.String("error", delErr.Error()))
			}
		}
		global.Log.Error("plant.ApplyUpdates() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新植物失败")
		return
	}

	// 新图片生效后清理旧图片
	if changed && newImage != "" && oldImage != "" && oldImage != newImage {
		if err := img_ser.Delete(oldImage); err != nil {
			global.Log.Error("img_ser.Delete() failed", zap.String("error", err.Error()))
		}
	}

	global.Log.Info("更新植物成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, plant)
}
