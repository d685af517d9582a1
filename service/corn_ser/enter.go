package corn_ser

import (
	"time"

	"github.com/robfig/cron/v3"
)

// 每天执行一次
//"0 0 0 * * *"      // 每天凌晨（00:00:00）

// 每小时执行一次
//"0 0 * * * *"      // 每小时的开始（01:00:00, 02:00:00, ...)

func CornInit() {
	timezone, _ := time.LoadLocation("Asia/Shanghai")
	Cron := cron.New(cron.WithSeconds(), cron.WithLocation(timezone))
	// 每天凌晨清理失效令牌
	Cron.AddFunc("0 0 3 * * *", PurgeDeadTokens)
	// 每小时全量同步文章ES镜像
	Cron.AddFunc("0 0 * * * *", ResyncArticleIndex)
	Cron.Start()
}
