package res

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageData(t *testing.T) {
	page := NewPageData([]int{1, 2, 3}, 25, 1, 10)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)

	page = NewPageData([]int{1, 2, 3}, 25, 2, 10)
	assert.False(t, page.First)
	assert.False(t, page.Last)

	page = NewPageData([]int{1, 2, 3}, 25, 3, 10)
	assert.False(t, page.First)
	assert.True(t, page.Last)
}

func TestNewPageDataEmpty(t *testing.T) {
	// 空结果首尾标记同时为真
	page := NewPageData([]int{}, 0, 1, 10)
	assert.Zero(t, page.TotalPages)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}

func TestNewPageDataExactFit(t *testing.T) {
	page := NewPageData([]int{1, 2}, 20, 2, 10)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.Last)
}
