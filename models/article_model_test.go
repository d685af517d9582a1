package models

import (
	"testing"

	"plants/global"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleCreateAndFind(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	article := &ArticleModel{Title: "月季养护", Abstract: "摘要", Content: "内容", UserID: user.ID}
	require.NoError(t, ArticleCreate(article))

	got, err := ArticleFindByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, "月季养护", got.Title)
}

func TestArticleUpdate(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	article := &ArticleModel{Title: "旧标题", Content: "内容", UserID: user.ID}
	require.NoError(t, ArticleCreate(article))

	require.NoError(t, article.Update(map[string]interface{}{"title": "新标题"}))

	got, err := ArticleFindByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, "新标题", got.Title)
}

func TestArticleDeleteRemovesComments(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	article := &ArticleModel{Title: "标题", Content: "内容", UserID: user.ID}
	require.NoError(t, ArticleCreate(article))

	_, err := CommentCreate(CommentOwner{Kind: OwnerArticle, ID: article.ID}, user.ID, "评论")
	require.NoError(t, err)

	require.NoError(t, article.Delete())

	_, err = ArticleFindByID(article.ID)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	var count int64
	require.NoError(t, global.DB.Model(&ArticleCommentModel{}).Where("article_id = ?", article.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestArticleListTitleFilter(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	require.NoError(t, ArticleCreate(&ArticleModel{Title: "Rose Care", Content: "c", UserID: user.ID}))
	require.NoError(t, ArticleCreate(&ArticleModel{Title: "Ivy Care", Content: "c", UserID: user.ID}))

	articles, total, err := ArticleList(PageInfo{Page: 1, PageSize: 10, Key: "rose"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, articles, 1)
	assert.Equal(t, "Rose Care", articles[0].Title)
}

// ES未启用时搜索退化为标题模糊查询
func TestArticleSearchFallsBackWithoutEs(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	require.NoError(t, ArticleCreate(&ArticleModel{Title: "Rose Care", Content: "c", UserID: user.ID}))

	articles, total, err := ArticleSearch(PageInfo{Page: 1, PageSize: 10, Key: "rose"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, articles, 1)
}

func TestEsSearchTotal(t *testing.T) {
	assert.EqualValues(t, 42, esSearchTotal(&types.TotalHits{Value: 42}, 3))
	// 响应缺省total时退化为本页命中数
	assert.EqualValues(t, 3, esSearchTotal(nil, 3))
	assert.EqualValues(t, 0, esSearchTotal(nil, 0))
}
