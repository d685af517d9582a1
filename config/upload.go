package config

type Upload struct {
	Path string `mapstructure:"path"` // 本地上传目录
	Size int    `mapstructure:"size"` // 单个文件大小上限（MB）
}
