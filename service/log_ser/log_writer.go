package log_ser

import (
	"encoding/json"
	"time"

	"plants/global"
	"plants/models"
)

// DBWriter 实现 zapcore.WriteSyncer 接口，日志异步落库
type DBWriter struct {
	logChan chan *models.LogModel
}

// NewDBWriter 创建数据库日志写入器
func NewDBWriter() *DBWriter {
	w := &DBWriter{
		logChan: make(chan *models.LogModel, 1000),
	}
	go w.startWorker()
	return w
}

// Write 实现 zapcore.WriteSyncer 接口
func (w *DBWriter) Write(p []byte) (n int, err error) {
	var logEntry map[string]interface{}
	if err := json.Unmarshal(p, &logEntry); err != nil {
		return 0, err
	}

	logModel := &models.LogModel{
		Level:    getString(logEntry, "level"),
		Caller:   getString(logEntry, "caller"),
		Message:  getString(logEntry, "msg"),
		ErrorMsg: getString(logEntry, "error"),
	}

	// 通道已满时丢弃，避免阻塞业务
	select {
	case w.logChan <- logModel:
	default:
	}
	return len(p), nil
}

// Sync 实现 zapcore.WriteSyncer 接口
func (w *DBWriter) Sync() error {
	return nil
}

func (w *DBWriter) startWorker() {
	const batchSize = 100
	const flushInterval = 5 * time.Second

	var batch []*models.LogModel
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case entry := <-w.logChan:
			batch = append(batch, entry)
			if len(batch) >= batchSize {
				w.writeBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.writeBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (w *DBWriter) writeBatch(logs []*models.LogModel) {
	if global.DB == nil {
		return
	}
	if err := global.DB.CreateInBatches(logs, len(logs)).Error; err != nil {
		println("Failed to write logs to database:", err.Error())
	}
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
