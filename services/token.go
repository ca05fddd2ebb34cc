package services

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"hotelera/config"
	"hotelera/errors"
)

// UserInfo son los datos de usuario embebidos en el token
type UserInfo struct {
	UserID uint `json:"userid"`
	Rol    int  `json:"role"`
}

// Claims define los claims del access token
type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
}

// GenerateToken emite un access token firmado con HS256
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// GetUserIDFromToken valida el token y devuelve userID y rol
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Método de firma inesperado", nil)
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token inválido", err)
	}

	return claims.UserInfo.UserID, claims.UserInfo.Rol, nil
}
