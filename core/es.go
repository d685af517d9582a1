package core

import (
	"plants/global"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// InitEs 初始化Elasticsearch客户端，文章搜索依赖它
func InitEs() *elasticsearch.TypedClient {
	esConfig := global.Config.Es
	cfg := elasticsearch.Config{
		Addresses: []string{esConfig.Dsn()},
	}
	es, err := elasticsearch.NewTypedClient(cfg)
	if err != nil {
		global.Log.Error("ES客户端创建失败",
			zap.String("dsn", esConfig.Dsn()),
			zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("ES连接成功", zap.String("method", "InitEs"), zap.String("path", "core/es.go"))

	return es
}
