package article

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ArticleDetailRequest struct {
	ID uint `uri:"id" binding:"required,gt=0"`
}

func (a *Article) ArticleDetail(c *gin.Context) {
	var req ArticleDetailRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	article, err := models.ArticleFindByID(req.ID)
	if err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			res.Error(c, res.ArticleNotFound, "文章不存在")
			return
		}
		global.Log.Error("models.ArticleFindByID() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查找文章失败")
		return
	}

	res.Success(c, article)
}
