package flags

import (
	"plants/global"
	"plants/models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func EsIndexCreate(c *cli.Context) (err error) {
	if err := models.ArticleIndexCreate(); err != nil {
		global.Log.Error("索引创建失败", zap.String("error", err.Error()))
		return err
	}
	// 建完索引顺手做一次全量同步
	if err := models.ArticleEsResync(); err != nil {
		global.Log.Error("索引同步失败", zap.String("error", err.Error()))
		return err
	}
	return nil
}
