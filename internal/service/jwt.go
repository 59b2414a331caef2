package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 30 * 24 * time.Hour

var jwtSecret []byte

// InitJWT sets the signing secret; it must run before tokens are issued.
func InitJWT(secret string) {
	if secret == "" {
		panic("JWT secret is empty")
	}
	jwtSecret = []byte(secret)
}

// Identity is what a guest token carries.
type Identity struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

func GenerateJWT(id Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"player_id": id.PlayerID,
		"name":      id.Name,
		"exp":       now.Add(tokenTTL).Unix(),
		"iat":       now.Unix(),
		"nbf":       now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseJWT(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	}, jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	playerID, ok := claims["player_id"].(string)
	if !ok || playerID == "" {
		return Identity{}, errors.New("player_id not found")
	}
	name, _ := claims["name"].(string)

	return Identity{PlayerID: playerID, Name: name}, nil
}
