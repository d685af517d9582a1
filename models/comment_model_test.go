package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateOnPlantAndArticle(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	plant := mustCreatePlant(t, "月季")
	article := &ArticleModel{Title: "养护指南", Content: "内容", UserID: user.ID}
	require.NoError(t, ArticleCreate(article))

	view, err := CommentCreate(CommentOwner{Kind: OwnerPlant, ID: plant.ID}, user.ID, "好养吗")
	require.NoError(t, err)
	assert.Equal(t, plant.ID, view.OwnerID)
	assert.Equal(t, user.Nickname, view.Nickname)

	view, err = CommentCreate(CommentOwner{Kind: OwnerArticle, ID: article.ID}, user.ID, "写得不错")
	require.NoError(t, err)
	assert.Equal(t, article.ID, view.OwnerID)
}

func TestCommentCreateMissingOwner(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")

	_, err := CommentCreate(CommentOwner{Kind: OwnerPlant, ID: 999}, user.ID, "内容")
	assert.ErrorIs(t, err, ErrPlantNotFound)

	_, err = CommentCreate(CommentOwner{Kind: OwnerArticle, ID: 999}, user.ID, "内容")
	assert.ErrorIs(t, err, ErrArticleNotFound)

	_, err = CommentCreate(CommentOwner{Kind: "video", ID: 1}, user.ID, "内容")
	assert.ErrorIs(t, err, ErrCommentOwnerKind)
}

func TestCommentCreateMissingUser(t *testing.T) {
	setupTestDB(t)

	plant := mustCreatePlant(t, "月季")
	_, err := CommentCreate(CommentOwner{Kind: OwnerPlant, ID: plant.ID}, 999, "内容")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCommentContentRules(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	plant := mustCreatePlant(t, "月季")
	owner := CommentOwner{Kind: OwnerPlant, ID: plant.ID}

	_, err := CommentCreate(owner, user.ID, "   ")
	assert.ErrorIs(t, err, ErrCommentEmpty)

	_, err = CommentCreate(owner, user.ID, strings.Repeat("长", 1001))
	assert.ErrorIs(t, err, ErrCommentTooLong)

	// 危险HTML被清洗
	view, err := CommentCreate(owner, user.ID, `好看<script>alert(1)</script>`)
	require.NoError(t, err)
	assert.Equal(t, "好看", view.Content)
}

func TestCommentListScopedToOwner(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	rose := mustCreatePlant(t, "月季")
	ivy := mustCreatePlant(t, "绿萝")

	for i := 0; i < 3; i++ {
		_, err := CommentCreate(CommentOwner{Kind: OwnerPlant, ID: rose.ID}, user.ID, fmt.Sprintf("rose-%d", i))
		require.NoError(t, err)
	}
	_, err := CommentCreate(CommentOwner{Kind: OwnerPlant, ID: ivy.ID}, user.ID, "ivy-0")
	require.NoError(t, err)

	views, total, err := CommentList(CommentOwner{Kind: OwnerPlant, ID: rose.ID}, PageInfo{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, views, 3)
	// 按创建顺序
	assert.Equal(t, "rose-0", views[0].Content)
	assert.Equal(t, user.Nickname, views[0].Nickname)
}

func TestCommentListPagination(t *testing.T) {
	setupTestDB(t)

	user := mustCreateUser(t, "alice")
	plant := mustCreatePlant(t, "月季")
	owner := CommentOwner{Kind: OwnerPlant, ID: plant.ID}

	for i := 0; i < 25; i++ {
		_, err := CommentCreate(owner, user.ID, fmt.Sprintf("comment-%d", i))
		require.NoError(t, err)
	}

	views, total, err := CommentList(owner, PageInfo{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Len(t, views, 10)

	views, _, err = CommentList(owner, PageInfo{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, views, 5)

	// 越界页返回空列表
	views, _, err = CommentList(owner, PageInfo{Page: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, views)
}
