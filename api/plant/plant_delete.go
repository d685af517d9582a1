package plant

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"
	"plants/service/img_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlantDeleteRequest struct {
	ID uint `uri:"id" binding:"required,gt=0"`
}

func (p *Plant) PlantDelete(c *gin.Context) {
	var req PlantDeleteRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
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

	if err := plant.Delete(); err != nil {
		global.Log.Error("plant.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除植物失败")
		return
	}

	// 数据删除成功后清理图片，失败只记录日志
	if plant.Image != "" {
		if err := img_ser.Delete(plant.Image); err != nil {
			global.Log.Error("img_ser.Delete() failed", zap.String("error", err.Error()))
		}
	}

	global.Log.Info("删除植物成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	// 返回删除前的数据
	res.Success(c, plant)
}
