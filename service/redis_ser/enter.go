package redis_ser

const (
	Prefix       = "plants:"
	RefreshToken = "refresh_token:user_id:"
)

func GetRedisKey(key string) string {
	return Prefix + key
}
