package redis_ser

import (
	"context"
	"strconv"
	"time"

	"plants/global"
)

// 令牌黑名单相关
const (
	TokenBlacklist = "token_blacklist:"
	BlacklistTTL   = 30 * time.Minute // 略大于 access token 的有效期
)

// InvalidateTokens 登出时令牌处理：access token 进黑名单，refresh token 删除。
// Redis 未启用时静默跳过，数据库侧的令牌作废仍然生效
func InvalidateTokens(userID uint, accessToken string) error {
	if global.Redis == nil {
		return nil
	}

	accessTokenKey := GetRedisKey(TokenBlacklist + accessToken)
	err := global.Redis.Set(context.Background(),
		accessTokenKey,
		"invalid",
		BlacklistTTL).Err()
	if err != nil {
		return err
	}

	refreshTokenKey := GetRedisKey(RefreshToken + strconv.Itoa(int(userID)))
	return global.Redis.Del(context.Background(), refreshTokenKey).Err()
}

// IsTokenBlacklisted 检查 access token 是否在黑名单中
func IsTokenBlacklisted(accessToken string) (bool, error) {
	if global.Redis == nil {
		return false, nil
	}
	key := GetRedisKey(TokenBlacklist + accessToken)
	n, err := global.Redis.Exists(context.Background(), key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SetRefreshToken 登录时存储 refresh token
func SetRefreshToken(userID uint, refreshToken string, ttl time.Duration) error {
	if global.Redis == nil {
		return nil
	}
	key := GetRedisKey(RefreshToken + strconv.Itoa(int(userID)))
	return global.Redis.Set(context.Background(), key, refreshToken, ttl).Err()
}

// GetRefreshToken 读取用户当前的 refresh token
func GetRefreshToken(userID uint) (string, error) {
	if global.Redis == nil {
		return "", nil
	}
	key := GetRedisKey(RefreshToken + strconv.Itoa(int(userID)))
	return global.Redis.Get(context.Background(), key).Result()
}

// DelRefreshToken 删除用户的 refresh token
func DelRefreshToken(userID uint) error {
	if global.Redis == nil {
		return nil
	}
	key := GetRedisKey(RefreshToken + strconv.Itoa(int(userID)))
	return global.Redis.Del(context.Background(), key).Err()
}
