package corn_ser

import (
	"plants/global"
	"plants/models"
)

// PurgeDeadTokens 清理已过期或已撤销的令牌记录
func PurgeDeadTokens() {
	n, err := models.TokenPurgeDead()
	if err != nil {
		global.Log.Errorf("清理失效令牌失败: %v", err)
		return
	}
	if n > 0 {
		global.Log.Infof("清理失效令牌完成, 共%d条", n)
	}
}
