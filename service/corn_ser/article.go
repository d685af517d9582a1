package corn_ser

import (
	"plants/global"
	"plants/models"
)

// ResyncArticleIndex 全量同步文章到ES，ES未启用时跳过
func ResyncArticleIndex() {
	if global.Es == nil {
		return
	}
	if err := models.ArticleEsResync(); err != nil {
		global.Log.Errorf("同步文章ES镜像失败: %v", err)
		return
	}
	global.Log.Info("同步文章ES镜像完成")
}
