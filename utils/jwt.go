package utils

import (
	"errors"
	"time"

	"plants/global"
	"plants/models/ctypes"

	"github.com/dgrijalva/jwt-go"
)

type PayLoad struct {
	Account string          `json:"account"`
	Role    ctypes.UserRole `json:"role"`
	UserID  uint            `json:"user_id"`
}

type CustomClaims struct {
	PayLoad
	jwt.StandardClaims
}

type RefreshClaims struct {
	UserID uint `json:"user_id"`
	jwt.StandardClaims
}

// GenerateAccessToken 生成 Access Token
func GenerateAccessToken(payload PayLoad) (string, error) {
	claims := CustomClaims{
		PayLoad: payload,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(15 * time.Minute).Unix(),
			Issuer:    global.Config.Jwt.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(global.Config.Jwt.Secret))
}

// GenerateRefreshToken 生成 Refresh Token
func GenerateRefreshToken(userID uint) (string, error) {
	claims := RefreshClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(global.Config.Jwt.Expires) * 24 * time.Hour).Unix(),
			Issuer:    global.Config.Jwt.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(global.Config.Jwt.Secret))
}

// ParseToken 解析 Access Token
func ParseToken(tokenString string) (*CustomClaims, error) {
	var claims CustomClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(global.Config.Jwt.Secret), nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, errors.New("token已过期")
			} else if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				return nil, errors.New("token格式错误")
			} else if ve.Errors&jwt.ValidationErrorSignatureInvalid != 0 {
				return nil, errors.New("token签名无效")
			} else if ve.Errors&jwt.ValidationErrorNotValidYet != 0 {
				return nil, errors.New("token尚未生效")
			}
		}
		return nil, errors.New("token无效")
	}

	if !token.Valid {
		return nil, errors.New("token验证失败")
	}

	return &claims, nil
}

// ParseRefreshToken 解析 Refresh Token
func ParseRefreshToken(tokenString string) (*RefreshClaims, error) {
	var claims RefreshClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(global.Config.Jwt.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token无效")
	}
	return &claims, nil
}
