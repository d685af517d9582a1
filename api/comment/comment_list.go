package comment

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

func (cm *Comment) CommentList(c *gin.Context) {
	var uri CommentOwnerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(uri); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var page models.PageInfo
	if err := c.ShouldBindQuery(&page); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	page.Normalize()

	owner := models.CommentOwner{Kind: models.CommentOwnerKind(uri.Owner), ID: uri.ID}
	views, total, err := models.CommentList(owner, page)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPlantNotFound):
			res.Error(c, res.PlantNotFound, "植物不存在")
		case errors.Is(err, models.ErrArticleNotFound):
			res.Error(c, res.ArticleNotFound, "文章不存在")
		default:
			global.Log.Error("models.CommentList() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "获取评论列表失败")
		}
		return
	}

	res.SuccessWithPage(c, views, total, page.Page, page.PageSize)
}
