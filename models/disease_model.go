package models

import (
	"errors"
	"fmt"

	"plants/global"

	"gorm.io/gorm"
)

var (
	ErrDiseaseNotFound = errors.New("疾病不存在")
	ErrDiseaseExists   = errors.New("疾病已存在")
)

// DiseaseModel 疾病模型，通过关联表与植物多对多关联
type DiseaseModel struct {
	MODEL  `json:","`
	Name   string       `json:"name" gorm:"uniqueIndex:idx_disease_name,length:191" validate:"required,min=1,max=100"`
	Plants []PlantModel `json:"-" gorm:"many2many:plant_diseases;joinForeignKey:DiseaseID;joinReferences:PlantID"`
}

// DiseaseFindByID 根据ID查找疾病
func DiseaseFindByID(id uint) (*DiseaseModel, error) {
	var disease DiseaseModel
	err := global.DB.First(&disease, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDiseaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查找疾病失败: %w", err)
	}
	return &disease, nil
}

// DiseaseFindByName 根据名称精确查找疾病
func DiseaseFindByName(name string) (*DiseaseModel, error) {
	var disease DiseaseModel
	err := global.DB.Where("name = ?", name).Take(&disease).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDiseaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查找疾病失败: %w", err)
	}
	return &disease, nil
}

// DiseaseFindAllByIDs 批量解析疾病ID，任一ID无效时返回ErrDiseaseNotFound
func DiseaseFindAllByIDs(ids []uint) ([]DiseaseModel, error) {
	var diseases []DiseaseModel
	if len(ids) == 0 {
		return diseases, nil
	}
	if err := global.DB.Where("id IN ?", ids).Find(&diseases).Error; err != nil {
		return nil, fmt.Errorf("查找疾病失败: %w", err)
	}
	// 数量不一致说明有无效ID
	if len(diseases) != len(ids) {
		return nil, ErrDiseaseNotFound
	}
	return diseases, nil
}

// DiseaseCreate 创建疾病，重名冲突
func DiseaseCreate(disease *DiseaseModel) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&DiseaseModel{}).Where("name = ?", disease.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("检查疾病存在性失败: %w", err)
		}
		if count > 0 {
			return ErrDiseaseExists
		}
		if err := tx.Create(disease).Error; err != nil {
			return fmt.Errorf("创建疾病失败: %w", err)
		}
		return nil
	})
}

// Update 更新疾病名称，名称为空或未变化时不写库
func (d *DiseaseModel) Update(name string) (bool, error) {
	if name == "" || name == d.Name {
		return false, nil
	}
	d.Name = name
	if err := global.DB.Model(d).Update("name", name).Error; err != nil {
		return false, fmt.Errorf("更新疾病失败: %w", err)
	}
	return true, nil
}

// Delete 删除疾病，先清除与植物的关联
func (d *DiseaseModel) Delete() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(d).Association("Plants").Clear(); err != nil {
			return fmt.Errorf("清除植物关联失败: %w", err)
		}
		if err := tx.Delete(d).Error; err != nil {
			return fmt.Errorf("删除疾病失败: %w", err)
		}
		return nil
	})
}

// DiseaseList 分页获取疾病，key为名称模糊过滤
func DiseaseList(page PageInfo) ([]DiseaseModel, int64, error) {
	query := global.DB.Model(&DiseaseModel{})
	if page.Key != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+page.Key+"%")
	}
	var diseases []DiseaseModel
	total, err := paginate(query, page, &diseases)
	if err != nil {
		return nil, 0, fmt.Errorf("获取疾病列表失败: %w", err)
	}
	return diseases, total, nil
}
