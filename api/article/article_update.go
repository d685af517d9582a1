package article

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

type ArticleUpdateRequest struct {
	ID       uint   `json:"-" uri:"id" validate:"required,gt=0"`
	Title    string `json:"title" validate:"omitempty,min=1,max=200"`
	Abstract string `json:"abstract" validate:"max=500"`
	Content  string `json:"content" validate:"omitempty,max=100000"`
}

func (a *Article) ArticleUpdate(c *gin.Context) {
	var req ArticleUpdateRequest
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

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
		article.Title = req.Title
	}
	if req.Abstract != "" {
		updates["abstract"] = req.Abstract
		article.Abstract = req.Abstract
	}
	if req.Content != "" {
		html, err := utils.ConvertMarkdownToHTML(req.Content)
		if err != nil {
			global.Log.Error("utils.ConvertMarkdownToHTML() failed", zap.String("error", err.Error()))
			res.Error(c, res.ServerError, "内容转换失败")
			return
		}
		content, err := utils.ConvertHTMLToMarkdown(html)
		if err != nil {
			global.Log.Error("utils.ConvertHTMLToMarkdown() failed", zap.String("error", err.Error()))
			res.Error(c, res.ServerError, "内容转换失败")
			return
		}
		updates["content"] = content
		article.Content = content
	}

	if err := article.Update(updates); err != nil {
		global.Log.Error("article.Update() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新文章失败")
		return
	}

	global.Log.Info("更新文章成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, article)
}
