package article

import (
	"errors"

	"plants/global"
	"plants/models"
	"plants/models/res"
	"plants/service/img_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ArticleDeleteRequest struct {
	ID uint `uri:"id" binding:"required,gt=0"`
}

func (a *Article) ArticleDelete(c *gin.Context) {
	var req ArticleDeleteRequest
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

	if err := article.Delete(); err != nil {
		global.Log.Error("article.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除文章失败")
		return
	}

	if article.Cover != "" {
		if err := img_ser.Delete(article.Cover); err != nil {
			global.Log.Error("img_ser.Delete() failed", zap.String("error", err.Error()))
		}
	}

	global.Log.Info("删除文章成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, article)
}
