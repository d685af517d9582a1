package models

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"plants/global"

	"github.com/importcjj/sensitive"
	"github.com/microcosm-cc/bluemonday"
)

const commentMaxLen = 1000

var (
	ErrCommentOwnerKind = errors.New("无效的评论目标类型")
	ErrCommentTooLong   = errors.New("评论内容过长")
	ErrCommentEmpty     = errors.New("评论内容不能为空")
)

// CommentOwnerKind 评论挂载的目标类型
type CommentOwnerKind string

const (
	OwnerPlant   CommentOwnerKind = "plant"
	OwnerArticle CommentOwnerKind = "article"
)

// CommentOwner 评论的挂载目标
type CommentOwner struct {
	Kind CommentOwnerKind
	ID   uint
}

// PlantCommentModel 植物评论
type PlantCommentModel struct {
	MODEL   `json:","`
	Content string    `json:"content" gorm:"type:text" validate:"required,max=1000"`
	PlantID uint      `json:"plant_id" gorm:"index"`
	UserID  uint      `json:"user_id"`
	User    UserModel `json:"user" gorm:"foreignKey:UserID"`
}

// ArticleCommentModel 文章评论
type ArticleCommentModel struct {
	MODEL     `json:","`
	Content   string    `json:"content" gorm:"type:text" validate:"required,max=1000"`
	ArticleID uint      `json:"article_id" gorm:"index"`
	UserID    uint      `json:"user_id"`
	User      UserModel `json:"user" gorm:"foreignKey:UserID"`
}

// CommentView 对外统一的评论视图
type CommentView struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	OwnerID   uint   `json:"owner_id"`
	UserID    uint   `json:"user_id"`
	Nickname  string `json:"nick_name"`
	CreatedAt string `json:"created_at"`
}

var (
	filterOnce    sync.Once
	sensitiveWord *sensitive.Filter
	ugcPolicy     *bluemonday.Policy
)

// initFilter 敏感词库缺失时跳过敏感词过滤，不阻断评论
func initFilter() {
	ugcPolicy = bluemonday.UGCPolicy()
	if _, err := os.Stat("sensitive_words.txt"); err != nil {
		log.Println("敏感词库不存在, 跳过敏感词过滤")
		return
	}
	filter := sensitive.New()
	if err := filter.LoadWordDict("sensitive_words.txt"); err != nil {
		log.Println("敏感词库加载失败:", err)
		return
	}
	sensitiveWord = filter
}

// filterContent 清洗评论内容：去除危险HTML，敏感词替换为*
func filterContent(content string) string {
	filterOnce.Do(initFilter)
	content = ugcPolicy.Sanitize(content)
	if sensitiveWord != nil {
		content = sensitiveWord.Replace(content, '*')
	}
	return strings.TrimSpace(content)
}

// ownerExists 检查评论目标是否存在
func ownerExists(owner CommentOwner) error {
	switch owner.Kind {
	case OwnerPlant:
		_, err := PlantFindByID(owner.ID)
		return err
	case OwnerArticle:
		_, err := ArticleFindByID(owner.ID)
		return err
	default:
		return ErrCommentOwnerKind
	}
}

// CommentCreate 创建评论，目标与用户都必须存在
func CommentCreate(owner CommentOwner, userID uint, content string) (*CommentView, error) {
	content = filterContent(content)
	if content == "" {
		return nil, ErrCommentEmpty
	}
	if len([]rune(content)) > commentMaxLen {
		return nil, ErrCommentTooLong
	}

	if err := ownerExists(owner); err != nil {
		return nil, err
	}
	user, err := UserFindByID(userID)
	if err != nil {
		return nil, err
	}

	switch owner.Kind {
	case OwnerPlant:
		comment := PlantCommentModel{Content: content, PlantID: owner.ID, UserID: userID}
		if err := global.DB.Create(&comment).Error; err != nil {
			return nil, fmt.Errorf("创建评论失败: %w", err)
		}
		return &CommentView{
			ID:        comment.ID,
			Content:   comment.Content,
			OwnerID:   comment.PlantID,
			UserID:    comment.UserID,
			Nickname:  user.Nickname,
			CreatedAt: comment.CreatedAt.String(),
		}, nil
	case OwnerArticle:
		comment := ArticleCommentModel{Content: content, ArticleID: owner.ID, UserID: userID}
		if err := global.DB.Create(&comment).Error; err != nil {
			return nil, fmt.Errorf("创建评论失败: %w", err)
		}
		return &CommentView{
			ID:        comment.ID,
			Content:   comment.Content,
			OwnerID:   comment.ArticleID,
			UserID:    comment.UserID,
			Nickname:  user.Nickname,
			CreatedAt: comment.CreatedAt.String(),
		}, nil
	default:
		return nil, ErrCommentOwnerKind
	}
}

// CommentList 分页获取目标下的评论，按创建顺序排列
func CommentList(owner CommentOwner, page PageInfo) ([]CommentView, int64, error) {
	if err := ownerExists(owner); err != nil {
		return nil, 0, err
	}

	var views []CommentView
	var total int64

	switch owner.Kind {
	case OwnerPlant:
		query := global.DB.Model(&PlantCommentModel{}).
			Preload("User").
			Where("plant_id = ?", owner.ID).
			Order("id ASC")
		var comments []PlantCommentModel
		n, err := paginate(query, page, &comments)
		if err != nil {
			return nil, 0, fmt.Errorf("获取评论列表失败: %w", err)
		}
		total = n
		for _, c := range comments {
			views = append(views, CommentView{
				ID:        c.ID,
				Content:   c.Content,
				OwnerID:   c.PlantID,
				UserID:    c.UserID,
				Nickname:  c.User.Nickname,
				CreatedAt: c.CreatedAt.String(),
			})
		}
	case OwnerArticle:
		query := global.DB.Model(&ArticleCommentModel{}).
			Preload("User").
			Where("article_id = ?", owner.ID).
			Order("id ASC")
		var comments []ArticleCommentModel
		n, err := paginate(query, page, &comments)
		if err != nil {
			return nil, 0, fmt.Errorf("获取评论列表失败: %w", err)
		}
		total = n
		for _, c := range comments {
			views = append(views, CommentView{
				ID:        c.ID,
				Content:   c.Content,
				OwnerID:   c.ArticleID,
				UserID:    c.UserID,
				Nickname:  c.User.Nickname,
				CreatedAt: c.CreatedAt.String(),
			})
		}
	default:
		return nil, 0, ErrCommentOwnerKind
	}

	if views == nil {
		views = []CommentView{}
	}
	return views, total, nil
}
