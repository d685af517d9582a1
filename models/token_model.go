package models

import (
	"errors"
	"fmt"

	"plants/global"

	"gorm.io/gorm"
)

var ErrTokenNotFound = errors.New("令牌不存在")

// TokenModel 登录令牌，过期或撤销任一标记置位即失效
type TokenModel struct {
	MODEL   `json:","`
	Token   string    `json:"token" gorm:"uniqueIndex:idx_token,length:191"`
	Expired bool      `json:"expired"`
	Revoked bool      `json:"revoked"`
	UserID  uint      `json:"user_id"`
	User    UserModel `json:"-" gorm:"foreignKey:UserID"`
}

// TokenCreate 登录时记录签发的令牌
func TokenCreate(userID uint, token string) error {
	record := &TokenModel{
		Token:  token,
		UserID: userID,
	}
	if err := global.DB.Create(record).Error; err != nil {
		return fmt.Errorf("记录令牌失败: %w", err)
	}
	return nil
}

// TokenFindByString 根据令牌串查找记录
func TokenFindByString(token string) (*TokenModel, error) {
	var record TokenModel
	err := global.DB.Where("token = ?", token).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查找令牌失败: %w", err)
	}
	return &record, nil
}

// Dead 令牌是否已失效
func (t *TokenModel) Dead() bool {
	return t.Expired || t.Revoked
}

// Revoke 登出时作废令牌
func (t *TokenModel) Revoke() error {
	t.Expired = true
	t.Revoked = true
	if err := global.DB.Model(t).Updates(map[string]interface{}{
		"expired": true,
		"revoked": true,
	}).Error; err != nil {
		return fmt.Errorf("作废令牌失败: %w", err)
	}
	return nil
}

// TokenIsDead 检查令牌串是否已被作废，未记录的令牌视为有效
func TokenIsDead(token string) (bool, error) {
	record, err := TokenFindByString(token)
	if errors.Is(err, ErrTokenNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return record.Dead(), nil
}

// TokenPurgeDead 清理失效令牌，返回清理条数
func TokenPurgeDead() (int64, error) {
	result := global.DB.Unscoped().
		Where("expired = ? OR revoked = ?", true, true).
		Delete(&TokenModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("清理失效令牌失败: %w", result.Error)
	}
	return result.RowsAffected, nil
}
