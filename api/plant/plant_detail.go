package plant

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlantDetailRequest struct {
	ID uint `uri:"id" binding:"required,gt=0"`
}

func (p *Plant) PlantDetail(c *gin.Context) {
	var req PlantDetailRequest
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

	res.Success(c, plant)
}
