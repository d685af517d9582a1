package models

import (
	"testing"

	"plants/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantCreateAndFind(t *testing.T) {
	setupTestDB(t)

	rust := mustCreateDisease(t, "锈病")
	mildew := mustCreateDisease(t, "白粉病")
	plant := mustCreatePlant(t, "月季", *rust, *mildew)

	got, err := PlantFindByID(plant.ID)
	require.NoError(t, err)
	assert.Equal(t, "月季", got.Name)
	assert.Len(t, got.Diseases, 2)
}

func TestPlantCreateDuplicateName(t *testing.T) {
	setupTestDB(t)

	mustCreatePlant(t, "月季")
	err := PlantCreate(&PlantModel{Name: "月季"}, nil)
	assert.ErrorIs(t, err, ErrPlantExists)
}

func TestPlantFindByIDNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := PlantFindByID(999)
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestPlantApplyUpdatesScalarDiff(t *testing.T) {
	setupTestDB(t)

	plant := mustCreatePlant(t, "月季")

	// 全部字段为空或与原值相同时不写库
	changed, err := plant.ApplyUpdates(PlantUpdates{Name: "月季"}, nil)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = plant.ApplyUpdates(PlantUpdates{Description: "喜阳"}, nil)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := PlantFindByID(plant.ID)
	require.NoError(t, err)
	assert.Equal(t, "喜阳", got.Description)
	assert.Equal(t, "月季", got.Name)
}

func TestPlantApplyUpdatesReplacesDiseases(t *testing.T) {
	setupTestDB(t)

	rust := mustCreateDisease(t, "锈病")
	mildew := mustCreateDisease(t, "白粉病")
	plant := mustCreatePlant(t, "月季", *rust)

	// 疾病关联无条件覆盖，标量无变化也生效
	changed, err := plant.ApplyUpdates(PlantUpdates{}, []DiseaseModel{*mildew})
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := PlantFindByID(plant.ID)
	require.NoError(t, err)
	require.Len(t, got.Diseases, 1)
	assert.Equal(t, "白粉病", got.Diseases[0].Name)
}

func TestPlantDeleteClearsAssociations(t *testing.T) {
	setupTestDB(t)

	rust := mustCreateDisease(t, "锈病")
	plant := mustCreatePlant(t, "月季", *rust)
	user := mustCreateUser(t, "alice")

	_, err := CommentCreate(CommentOwner{Kind: OwnerPlant, ID: plant.ID}, user.ID, "好看")
	require.NoError(t, err)

	require.NoError(t, plant.Delete())

	_, err = PlantFindByID(plant.ID)
	assert.ErrorIs(t, err, ErrPlantNotFound)

	// 关联表与评论同时被清理
	var joinCount int64
	require.NoError(t, global.DB.Table("plant_diseases").Count(&joinCount).Error)
	assert.Zero(t, joinCount)

	var commentCount int64
	require.NoError(t, global.DB.Model(&PlantCommentModel{}).Where("plant_id = ?", plant.ID).Count(&commentCount).Error)
	assert.Zero(t, commentCount)

	// 疾病本身不受影响
	_, err = DiseaseFindByID(rust.ID)
	assert.NoError(t, err)
}

func TestPlantSearchCaseInsensitive(t *testing.T) {
	setupTestDB(t)

	mustCreatePlant(t, "Monstera Deliciosa")
	mustCreatePlant(t, "Ficus Lyrata")

	page := PageInfo{Page: 1, PageSize: 10}
	plants, total, err := PlantSearch("monstera", page)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, plants, 1)
	assert.Equal(t, "Monstera Deliciosa", plants[0].Name)

	plants, total, err = PlantSearch("FICUS", page)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, plants, 1)
}

func TestPlantListPagination(t *testing.T) {
	setupTestDB(t)

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		mustCreatePlant(t, "plant-"+name)
	}

	plants, total, err := PlantList(PageInfo{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, plants, 2)

	plants, _, err = PlantList(PageInfo{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, plants, 1)
}

func TestPlantsByDiseaseName(t *testing.T) {
	setupTestDB(t)

	rust := mustCreateDisease(t, "锈病")
	mustCreatePlant(t, "月季", *rust)
	mustCreatePlant(t, "绿萝")

	page := PageInfo{Page: 1, PageSize: 10}
	plants, total, err := PlantsByDiseaseName("锈病", page)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, plants, 1)
	assert.Equal(t, "月季", plants[0].Name)

	// 未知疾病直接空页，不报错
	plants, total, err = PlantsByDiseaseName("不存在的病", page)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, plants)
}
