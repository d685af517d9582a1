package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"plants/global"

	"github.com/avast/retry-go"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("文章不存在")

// ArticleModel 科普文章，数据库为准，检索走ES镜像
type ArticleModel struct {
	MODEL    `json:","`
	Title    string                `json:"title" gorm:"size:200" validate:"required,min=1,max=200"`
	Abstract string                `json:"abstract" gorm:"type:text"`
	Content  string                `json:"content" gorm:"type:longtext" validate:"required"`
	Cover    string                `json:"cover"`
	UserID   uint                  `json:"user_id"`
	User     UserModel             `json:"-" gorm:"foreignKey:UserID"`
	Comments []ArticleCommentModel `json:"-" gorm:"foreignKey:ArticleID"`
}

const (
	articleIndex   = "plants_article_index"
	esBatchSize    = 500
	esTimeout      = time.Second * 5
	esRetryTimes   = 3
	esRetryBackoff = time.Millisecond * 200
)

// EsArticle ES中的文章文档
type EsArticle struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Abstract  string `json:"abstract"`
	Content   string `json:"content"`
	Cover     string `json:"cover"`
	UserID    uint   `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

func (a *ArticleModel) esDoc() *EsArticle {
	return &EsArticle{
		ID:        strconv.FormatUint(uint64(a.ID), 10),
		Title:     a.Title,
		Abstract:  a.Abstract,
		Content:   a.Content,
		Cover:     a.Cover,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt.String(),
	}
}

// ArticleFindByID 根据ID查找文章
func ArticleFindByID(id uint) (*ArticleModel, error) {
	var article ArticleModel
	err := global.DB.First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查找文章失败: %w", err)
	}
	return &article, nil
}

// ArticleCreate 创建文章并同步到ES
func ArticleCreate(article *ArticleModel) error {
	if err := global.DB.Create(article).Error; err != nil {
		return fmt.Errorf("创建文章失败: %w", err)
	}
	if err := esIndexArticle(article); err != nil {
		global.Log.Warnf("文章ES同步失败: %v", err)
	}
	return nil
}

// Update 更新文章标量字段，同步ES镜像
func (a *ArticleModel) Update(updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := global.DB.Model(a).Updates(updates).Error; err != nil {
		return fmt.Errorf("更新文章失败: %w", err)
	}
	if err := esIndexArticle(a); err != nil {
		global.Log.Warnf("文章ES同步失败: %v", err)
	}
	return nil
}

// Delete 删除文章及其评论，移除ES文档
func (a *ArticleModel) Delete() error {
	err := global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", a.ID).Delete(&ArticleCommentModel{}).Error; err != nil {
			return fmt.Errorf("删除文章评论失败: %w", err)
		}
		if err := tx.Delete(a).Error; err != nil {
			return fmt.Errorf("删除文章失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := esDeleteArticle(a.ID); err != nil {
		global.Log.Warnf("文章ES删除失败: %v", err)
	}
	return nil
}

// ArticleList 分页获取文章
func ArticleList(page PageInfo) ([]ArticleModel, int64, error) {
	query := global.DB.Model(&ArticleModel{}).Order("id DESC")
	if page.Key != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+page.Key+"%")
	}
	var articles []ArticleModel
	total, err := paginate(query, page, &articles)
	if err != nil {
		return nil, 0, fmt.Errorf("获取文章列表失败: %w", err)
	}
	return articles, total, nil
}

// esIndexArticle 写入或覆盖ES文档，ES不可用时跳过
func esIndexArticle(article *ArticleModel) error {
	if global.Es == nil {
		return nil
	}
	return retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), esTimeout)
			defer cancel()
			doc := article.esDoc()
			_, err := global.Es.Index(articleIndex).
				Id(doc.ID).
				Document(doc).
				Refresh(refresh.True).
				Do(ctx)
			return err
		},
		retry.Attempts(esRetryTimes),
		retry.Delay(esRetryBackoff),
	)
}

// esDeleteArticle 删除ES文档，ES不可用时跳过
func esDeleteArticle(id uint) error {
	if global.Es == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), esTimeout)
	defer cancel()
	_, err := global.Es.Delete(articleIndex, strconv.FormatUint(uint64(id), 10)).
		Refresh(refresh.True).
		Do(ctx)
	return err
}

// ArticleIndexExist 检查文章索引是否存在
func ArticleIndexExist() (bool, error) {
	if global.Es == nil {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), esTimeout)
	defer cancel()
	exist, err := global.Es.Indices.Exists(articleIndex).Do(ctx)
	if err != nil {
		return false, fmt.Errorf("检查索引是否存在失败: %w", err)
	}
	return exist, nil
}

// ArticleIndexCreate 重建文章索引
func ArticleIndexCreate() error {
	if global.Es == nil {
		return errors.New("ES未初始化")
	}
	ctx, cancel := context.WithTimeout(context.Background(), esTimeout)
	defer cancel()

	exist, err := ArticleIndexExist()
	if err != nil {
		return err
	}
	if exist {
		if _, err := global.Es.Indices.Delete(articleIndex).Do(ctx); err != nil {
			return fmt.Errorf("删除已存在的索引失败: %w", err)
		}
	}

	properties := map[string]types.Property{
		"title":      types.NewTextProperty(),
		"abstract":   types.NewTextProperty(),
		"content":    types.NewTextProperty(),
		"cover":      types.NewKeywordProperty(),
		"user_id":    types.NewIntegerNumberProperty(),
		"created_at": types.NewDateProperty(),
	}

	_, err = global.Es.Indices.Create(articleIndex).
		Mappings(&types.TypeMapping{Properties: properties}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("创建索引失败: %w", err)
	}
	global.Log.Infof("创建文章索引成功: %s", articleIndex)
	return nil
}

// ArticleEsResync 全量重建ES镜像，批量并发写入
func ArticleEsResync() error {
	if global.Es == nil {
		return nil
	}

	var articles []ArticleModel
	if err := global.DB.Find(&articles).Error; err != nil {
		return fmt.Errorf("读取文章失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < len(articles); i += esBatchSize {
		end := i + esBatchSize
		if end > len(articles) {
			end = len(articles)
		}
		batch := articles[i:end]

		g.Go(func() error {
			bulk := global.Es.Bulk().Index(articleIndex)
			for j := range batch {
				doc := batch[j].esDoc()
				if err := bulk.IndexOp(types.IndexOperation{Id_: &doc.ID}, doc); err != nil {
					return fmt.Errorf("构建批量请求失败: %w", err)
				}
			}
			resp, err := bulk.Refresh(refresh.True).Do(ctx)
			if err != nil {
				return fmt.Errorf("批量写入文章失败: %w", err)
			}
			if resp.Errors {
				return errors.New("批量写入文章时发生错误")
			}
			return nil
		})
	}
	return g.Wait()
}

// ArticleSearch 全文检索，标题权重最高，ES不可用时退化为标题模糊查询
func ArticleSearch(page PageInfo) ([]ArticleModel, int64, error) {
	if global.Es == nil || page.Key == "" {
		return ArticleList(page)
	}

	ctx, cancel := context.WithTimeout(context.Background(), esTimeout)
	defer cancel()

	boolQuery := types.NewBoolQuery()
	multiMatch := types.NewMultiMatchQuery()
	multiMatch.Query = page.Key
	multiMatch.Fields = []string{"title^3", "abstract^2", "content"}
	boolQuery.Must = append(boolQuery.Must, types.Query{MultiMatch: multiMatch})

	resp, err := global.Es.Search().
		Index(articleIndex).
		Query(&types.Query{Bool: boolQuery}).
		Sort(types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &sortorder.Desc},
			},
		}).
		From(page.Offset()).
		Size(page.PageSize).
		Do(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("搜索文章失败: %w", err)
	}

	ids := make([]uint, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc EsArticle
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			global.Log.Errorf("解析文章文档失败: %v", err)
			continue
		}
		id, err := strconv.ParseUint(doc.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	articles := make([]ArticleModel, 0, len(ids))
	for _, id := range ids {
		article, err := ArticleFindByID(id)
		if errors.Is(err, ErrArticleNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, *article)
	}

	return articles, esSearchTotal(resp.Hits.Total, len(resp.Hits.Hits)), nil
}

// esSearchTotal 取命中总数，关闭 track_total_hits 时 ES 不返回 total，退化为本页命中数
func esSearchTotal(total *types.TotalHits, hitCount int) int64 {
	if total == nil {
		return int64(hitCount)
	}
	return total.Value
}
