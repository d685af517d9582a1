package config

type TencentCos struct {
	Open      bool   `mapstructure:"open"`
	SecretID  string `mapstructure:"secret_id"`
	SecretKey string `mapstructure:"secret_key"`
	BucketURL string `mapstructure:"bucket_url"`
}
