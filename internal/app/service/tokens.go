package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ujwegh/gamemart/internal/app/config"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
)

type TokenService interface {
	GetTelegramID(tokenString string) (int64, error)
	GenerateToken(telegramID int64) (string, error)
}

type Claims struct {
	jwt.RegisteredClaims
	TelegramID int64 `json:"telegram_id"`
}

type TokenServiceImpl struct {
	secretKey     string
	tokenLifetime time.Duration
}

func NewTokenService(cfg config.AppConfig) *TokenServiceImpl {
	return &TokenServiceImpl{
		secretKey:     cfg.TokenSecretKey,
		tokenLifetime: time.Duration(cfg.TokenLifetimeSec) * time.Second,
	}
}

func (ts TokenServiceImpl) GetTelegramID(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(ts.secretKey), nil
		})
	if err != nil {
		return 0, appErrors.New(fmt.Errorf("token error: failed to parse token: %w", err), "failed to parse token")
	}

	if !token.Valid {
		return 0, appErrors.New(errors.New("token error"), "token is not valid")
	}

	if claims.TelegramID <= 0 {
		return 0, appErrors.New(errors.New("token error: invalid telegram id in token"), "invalid telegram id in token")
	}

	return claims.TelegramID, nil
}

func (ts TokenServiceImpl) GenerateToken(telegramID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "gamemart",
			Subject:   strconv.FormatInt(telegramID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TelegramID: telegramID,
	})

	tokenString, err := token.SignedString([]byte(ts.secretKey))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
