package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiseaseCreateDuplicate(t *testing.T) {
	setupTestDB(t)

	mustCreateDisease(t, "锈病")
	err := DiseaseCreate(&DiseaseModel{Name: "锈病"})
	assert.ErrorIs(t, err, ErrDiseaseExists)
}

func TestDiseaseFindAllByIDs(t *testing.T) {
	setupTestDB(t)

	rust := mustCreateDisease(t, "锈病")
	mildew := mustCreateDisease(t, "白粉病")

	diseases, err := DiseaseFindAllByIDs([]uint{rust.ID, mildew.ID})
	require.NoError(t, err)
	assert.Len(t, diseases, 2)

	// 任一ID无效则整体失败
	_, err = DiseaseFindAllByIDs([]uint{rust.ID, 999})
	assert.ErrorIs(t, err, ErrDiseaseNotFound)

	// 空列表合法
	diseases, err = DiseaseFindAllByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, diseases)
}

func TestDiseaseUpdateNoop(t *testing.T) {
	setupTestDB(t)

	disease := mustCreateDisease(t, "锈病")

	changed, err := disease.Update("")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = disease.Update("锈病")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = disease.Update("叶斑病")
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := DiseaseFindByID(disease.ID)
	require.NoError(t, err)
	assert.Equal(t, "叶斑病", got.Name)
}

func TestDiseaseDeleteClearsPlantLinks(t *testing.T) {
	setupTestDB(t)

	rust := mustCreateDisease(t, "锈病")
	plant := mustCreatePlant(t, "月季", *rust)

	require.NoError(t, rust.Delete())

	_, err := DiseaseFindByID(rust.ID)
	assert.ErrorIs(t, err, ErrDiseaseNotFound)

	// 植物保留，关联消失
	got, err := PlantFindByID(plant.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Diseases)
}

func TestDiseaseListKeyFilter(t *testing.T) {
	setupTestDB(t)

	mustCreateDisease(t, "Leaf Spot")
	mustCreateDisease(t, "Root Rot")

	diseases, total, err := DiseaseList(PageInfo{Page: 1, PageSize: 10, Key: "leaf"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, diseases, 1)
	assert.Equal(t, "Leaf Spot", diseases[0].Name)
}
