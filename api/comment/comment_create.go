package comment

import (
	"errors"

	"plants/global"
	"plants/middleware"
	"plants/models"
	"plants/models/res"
	"plants/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CommentOwnerURI struct {
	Owner string `uri:"owner" validate:"required,oneof=plant article"`
	ID    uint   `uri:"id" validate:"required,gt=0"`
}

type CommentCreateRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

func (cm *Comment) CommentCreate(c *gin.Context) {
	var uri CommentOwnerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(uri); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var req CommentCreateRequest
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

	claims, ok := middleware.GetClaims(c)
	if !ok {
		res.Error(c, res.TokenMissing, "缺少token")
		return
	}

	owner := models.CommentOwner{Kind: models.CommentOwnerKind(uri.Owner), ID: uri.ID}
	view, err := models.CommentCreate(owner, claims.UserID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPlantNotFound):
			res.Error(c, res.PlantNotFound, "植物不存在")
		case errors.Is(err, models.ErrArticleNotFound):
			res.Error(c, res.ArticleNotFound, "文章不存在")
		case errors.Is(err, models.ErrUserNotFound):
			res.Error(c, res.UserNotFound, "用户不存在")
		case errors.Is(err, models.ErrCommentEmpty), errors.Is(err, models.ErrCommentTooLong):
			res.Error(c, res.CommentInvalid, err.Error())
		default:
			global.Log.Error("models.CommentCreate() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "创建评论失败")
		}
		return
	}

	global.Log.Info("创建评论成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, view)
}
