package article

import (
	"plants/global"
	"plants/models"
	"plants/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *Article) ArticleList(c *gin.Context) {
	var page models.PageInfo
	if err := c.ShouldBindQuery(&page); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	page.Normalize()

	articles, total, err := models.ArticleList(page)
	if err != nil {
		global.Log.Error("models.ArticleList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取文章列表失败")
		return
	}

	res.SuccessWithPage(c, articles, total, page.Page, page.PageSize)
}

// ArticleSearch 全文检索，ES不可用时退化为标题模糊查询
func (a *Article) ArticleSearch(c *gin.Context) {
	var page models.PageInfo
	if err := c.ShouldBindQuery(&page); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	page.Normalize()

	articles, total, err := models.ArticleSearch(page)
	if err != nil {
		global.Log.Error("models.ArticleSearch() failed", zap.String("error", err.Error()))
		res.Error(c, res.SearchError, "搜索文章失败")
		return
	}

	res.SuccessWithPage(c, articles, total, page.Page, page.PageSize)
}
