package models

import (
	"errors"
	"fmt"

	"plants/global"
	"plants/models/ctypes"
	"plants/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("用户不存在")
	ErrUserExists   = errors.New("用户名或账号已存在")
)

// UserModel 用户模型
type UserModel struct {
	MODEL    `json:","`
	Nickname string          `json:"nick_name" gorm:"column:nick_name;size:50" validate:"required,min=2,max=50"`
	Account  string          `json:"account" gorm:"uniqueIndex:idx_account,length:191" validate:"required,min=5,max=191"`
	Password string          `json:"-" validate:"required,min=6"`
	Email    string          `json:"email"`
	Address  string          `json:"address"`
	Role     ctypes.UserRole `json:"role" validate:"required"`
}

// Create 创建用户
func (u *UserModel) Create(ip string) error {
	if err := utils.Validate(u); err != nil {
		return fmt.Errorf("输入验证失败: %w", err)
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := u.checkExist(tx); err != nil {
			return err
		}

		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("密码处理失败: %w", err)
		}
		u.Password = hashedPassword

		// 注册IP解析为地区
		u.Address = utils.GetAddrByIp(ip)

		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("创建用户失败: %w", err)
		}

		return nil
	})
}

// checkExist 检查用户是否已存在
func (u *UserModel) checkExist(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&UserModel{}).
		Where("nick_name = ? OR account = ?", u.Nickname, u.Account).
		Count(&count).
		Error
	if err != nil {
		return fmt.Errorf("检查用户存在性失败: %w", err)
	}
	if count > 0 {
		return ErrUserExists
	}
	return nil
}

// UserFindByID 根据ID查找用户
func UserFindByID(id uint) (*UserModel, error) {
	var user UserModel
	err := global.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查找用户失败: %w", err)
	}
	return &user, nil
}

// FindByAccount 根据账号查找用户
func (u *UserModel) FindByAccount(account string) error {
	return global.DB.Where("account = ?", account).Take(u).Error
}

// UpdatePassword 更新用户密码
func (u *UserModel) UpdatePassword(newPassword string) error {
	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("密码处理失败: %w", err)
	}

	return global.DB.Model(u).Update("password", hashedPassword).Error
}

// Delete 删除用户，同时作废其全部令牌
func (u *UserModel) Delete() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", u.ID).Delete(&TokenModel{}).Error; err != nil {
			return fmt.Errorf("删除用户令牌失败: %w", err)
		}
		if err := tx.Delete(u).Error; err != nil {
			return fmt.Errorf("删除用户失败: %w", err)
		}
		return nil
	})
}

// ValidatePassword 验证密码
func (u *UserModel) ValidatePassword(password string) bool {
	return utils.CheckPassword(u.Password, password)
}

// IsAdmin 检查是否为管理员
func (u *UserModel) IsAdmin() bool {
	return u.Role == ctypes.RoleAdmin
}

// UserList 分页获取用户
func UserList(page PageInfo) ([]UserModel, int64, error) {
	var users []UserModel
	total, err := paginate(global.DB.Model(&UserModel{}), page, &users)
	if err != nil {
		return nil, 0, fmt.Errorf("获取用户列表失败: %w", err)
	}
	return users, total, nil
}
