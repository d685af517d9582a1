package article

import (
	"plants/global"
	"plants/middleware"
	"plants/models"
	"plants/models/res"
	"plants/service/img_ser"
	"plants/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ArticleCreateRequest struct {
	Title    string `form:"title" validate:"required,min=1,max=200"`
	Abstract string `form:"abstract" validate:"max=500"`
	Content  string `form:"content" validate:"required,min=1,max=100000"`
}

func (a *Article) ArticleCreate(c *gin.Context) {
	var req ArticleCreateRequest
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

	claims, ok := middleware.GetClaims(c)
	if !ok {
		res.Error(c, res.TokenMissing, "缺少token")
		return
	}

	// markdown 往返清洗，去除嵌入的脚本
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

	var coverPath string
	if file, err := c.FormFile("cover"); err == nil && file != nil {
		coverPath, err = img_ser.Store(file, img_ser.FolderArticle)
		if err != nil {
			global.Log.Error("img_ser.Store() failed", zap.String("error", err.Error()))
			res.Error(c, res.FileUploadFailed, err.Error())
			return
		}
	}

	article := models.ArticleModel{
		Title:    req.Title,
		Abstract: req.Abstract,
		Content:  content,
		Cover:    coverPath,
		UserID:   claims.UserID,
	}
	if err := models.ArticleCreate(&article); err != nil {
		if coverPath != "" {
			if delErr := img_ser.Delete(coverPath); delErr != nil {
				global.Log.Error("img_ser.Delete() failed", zap.String("error", delErr.Error()))
			}
		}
		global.Log.Error("models.ArticleCreate() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建文章失败")
		return
	}

	global.Log.Info("创建文章成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, article)
}
