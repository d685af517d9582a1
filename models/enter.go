package models

import (
	"plants/models/ctypes"

	"gorm.io/gorm"
)

// PageInfo 分页查询参数
type PageInfo struct {
	Page     int    `json:"page" form:"page"`
	Key      string `json:"key" form:"key"`
	PageSize int    `json:"page_size" form:"page_size"`
}

// Normalize 规范化分页参数
func (p *PageInfo) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
}

// Offset 计算偏移量
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type MODEL struct {
	ID        uint           `gorm:"primaryKey;comment:id" json:"id"`
	CreatedAt ctypes.MyTime  `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP;comment:创建时间" json:"created_at"`
	UpdatedAt ctypes.MyTime  `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP;comment:更新时间" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间" json:"deleted_at"`
}

type IDRequest struct {
	ID uint `json:"id" uri:"id" form:"id" validate:"required,gt=0"`
}

// paginate 通用分页查询，返回总数并把当前页写入out
func paginate(query *gorm.DB, page PageInfo, out interface{}) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	err := query.Limit(page.PageSize).Offset(page.Offset()).Find(out).Error
	return total, err
}
