package models

import (
	"testing"

	"plants/config"
	"plants/global"
	"plants/models/ctypes"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 每个测试用独立的内存库
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&UserModel{},
		&TokenModel{},
		&PlantModel{},
		&DiseaseModel{},
		&ArticleModel{},
		&PlantCommentModel{},
		&ArticleCommentModel{},
		&LogModel{},
	)
	require.NoError(t, err)

	global.DB = db
	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Secret:  "test-secret",
			Expires: 7,
			Issuer:  "test",
		},
		Upload: config.Upload{Path: t.TempDir(), Size: 5},
	}
	// Redis/ES/地址库在单测里不可用，相关路径都有空值保护
	global.Redis = nil
	global.Es = nil
	global.AddrDB = nil
}

func mustCreateUser(t *testing.T, account string) *UserModel {
	t.Helper()
	user := &UserModel{
		Nickname: "user-" + account,
		Account:  account,
		Password: "secret123",
		Role:     ctypes.RoleUser,
	}
	require.NoError(t, user.Create("127.0.0.1"))
	return user
}

func mustCreateDisease(t *testing.T, name string) *DiseaseModel {
	t.Helper()
	disease := &DiseaseModel{Name: name}
	require.NoError(t, DiseaseCreate(disease))
	return disease
}

func mustCreatePlant(t *testing.T, name string, diseases ...DiseaseModel) *PlantModel {
	t.Helper()
	plant := &PlantModel{Name: name, Description: "desc"}
	require.NoError(t, PlantCreate(plant, diseases))
	return plant
}
