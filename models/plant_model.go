package models

import (
	"errors"
	"fmt"

	"plants/global"

	"gorm.io/gorm"
)

var (
	ErrPlantNotFound = errors.New("植物不存在")
	ErrPlantExists   = errors.New("植物已存在")
)

// PlantModel 植物模型，独占其评论，与疾病共享关联
type PlantModel struct {
	MODEL       `json:","`
	Name        string              `json:"name" gorm:"uniqueIndex:idx_plant_name,length:191" validate:"required,min=1,max=100"`
	Description string              `json:"description" gorm:"type:text"`
	Usage       string              `json:"usage" gorm:"type:text"`
	Precautions string              `json:"precautions" gorm:"type:text"`
	Image       string              `json:"image"`
	Diseases    []DiseaseModel      `json:"diseases" gorm:"many2many:plant_diseases;joinForeignKey:PlantID;joinReferences:DiseaseID"`
	Comments    []PlantCommentModel `json:"-" gorm:"foreignKey:PlantID"`
}

// PlantUpdates 更新请求中的标量字段，空值表示不修改
type PlantUpdates struct {
	Name        string
	Description string
	Usage       string
	Precautions string
	Image       string
}

// PlantFindByID 根据ID查找植物，带疾病关联
func PlantFindByID(id uint) (*PlantModel, error) {
	var plant PlantModel
	err := global.DB.Preload("Diseases").First(&plant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查找植物失败: %w", err)
	}
	return &plant, nil
}

// PlantExistsByName 检查植物名称是否已被占用
func PlantExistsByName(name string) (bool, error) {
	var count int64
	err := global.DB.Model(&PlantModel{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("检查植物存在性失败: %w", err)
	}
	return count > 0, nil
}

// PlantCreate 创建植物并绑定疾病关联，重名冲突
func PlantCreate(plant *PlantModel, diseases []DiseaseModel) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&PlantModel{}).Where("name = ?", plant.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("检查植物存在性失败: %w", err)
		}
		if count > 0 {
			return ErrPlantExists
		}
		plant.Diseases = diseases
		if err := tx.Create(plant).Error; err != nil {
			return fmt.Errorf("创建植物失败: %w", err)
		}
		return nil
	})
}

// ApplyUpdates 应用更新：疾病关联无条件覆盖，标量字段仅在非空且有变化时覆盖，
// 有变化才写库，返回是否发生了写入
func (p *PlantModel) ApplyUpdates(u PlantUpdates, diseases []DiseaseModel) (bool, error) {
	if err := global.DB.Model(p).Association("Diseases").Replace(diseases); err != nil {
		return false, fmt.Errorf("更新疾病关联失败: %w", err)
	}
	p.Diseases = diseases

	change := false

	if u.Name != "" && u.Name != p.Name {
		p.Name = u.Name
		change = true
	}
	if u.Description != "" && u.Description != p.Description {
		p.Description = u.Description
		change = true
	}
	if u.Usage != "" && u.Usage != p.Usage {
		p.Usage = u.Usage
		change = true
	}
	if u.Precautions != "" && u.Precautions != p.Precautions {
		p.Precautions = u.Precautions
		change = true
	}
	if u.Image != "" && u.Image != p.Image {
		p.Image = u.Image
		change = true
	}

	if !change {
		return false, nil
	}

	if err := global.DB.Model(p).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"usage":       p.Usage,
		"precautions": p.Precautions,
		"image":       p.Image,
	}).Error; err != nil {
		return false, fmt.Errorf("更新植物失败: %w", err)
	}
	return true, nil
}

// Delete 删除植物，先清除疾病关联和评论，避免关联表残留
func (p *PlantModel) Delete() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Association("Diseases").Clear(); err != nil {
			return fmt.Errorf("清除疾病关联失败: %w", err)
		}
		if err := tx.Where("plant_id = ?", p.ID).Delete(&PlantCommentModel{}).Error; err != nil {
			return fmt.Errorf("删除植物评论失败: %w", err)
		}
		if err := tx.Delete(p).Error; err != nil {
			return fmt.Errorf("删除植物失败: %w", err)
		}
		return nil
	})
}

// PlantList 分页获取植物
func PlantList(page PageInfo) ([]PlantModel, int64, error) {
	query := global.DB.Model(&PlantModel{}).Preload("Diseases")
	var plants []PlantModel
	total, err := paginate(query, page, &plants)
	if err != nil {
		return nil, 0, fmt.Errorf("获取植物列表失败: %w", err)
	}
	return plants, total, nil
}

// PlantListAll 获取全部植物
func PlantListAll() ([]PlantModel, error) {
	var plants []PlantModel
	if err := global.DB.Preload("Diseases").Find(&plants).Error; err != nil {
		return nil, fmt.Errorf("获取植物列表失败: %w", err)
	}
	return plants, nil
}

// PlantSearch 名称子串搜索，不区分大小写，分页
func PlantSearch(term string, page PageInfo) ([]PlantModel, int64, error) {
	query := global.DB.Model(&PlantModel{}).
		Preload("Diseases").
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%")
	var plants []PlantModel
	total, err := paginate(query, page, &plants)
	if err != nil {
		return nil, 0, fmt.Errorf("搜索植物失败: %w", err)
	}
	return plants, total, nil
}

// PlantSearchAll 名称子串搜索，不区分大小写，不分页
func PlantSearchAll(term string) ([]PlantModel, error) {
	var plants []PlantModel
	err := global.DB.Preload("Diseases").
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Find(&plants).Error
	if err != nil {
		return nil, fmt.Errorf("搜索植物失败: %w", err)
	}
	return plants, nil
}

// PlantsByDiseaseName 按疾病名称查植物，疾病不存在时直接返回空页
func PlantsByDiseaseName(diseaseName string, page PageInfo) ([]PlantModel, int64, error) {
	disease, err := DiseaseFindByName(diseaseName)
	if errors.Is(err, ErrDiseaseNotFound) {
		return []PlantModel{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return PlantsByDiseaseID(disease.ID, page)
}

// PlantsByDiseaseID 按疾病ID反查关联植物，分页
func PlantsByDiseaseID(diseaseID uint, page PageInfo) ([]PlantModel, int64, error) {
	query := global.DB.Model(&PlantModel{}).
		Preload("Diseases").
		Joins("JOIN plant_diseases ON plant_diseases.plant_id = plant_models.id").
		Where("plant_diseases.disease_id = ?", diseaseID)
	var plants []PlantModel
	total, err := paginate(query, page, &plants)
	if err != nil {
		return nil, 0, fmt.Errorf("按疾病查找植物失败: %w", err)
	}
	return plants, total, nil
}
