package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/noorix/hub/backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionTTL is how long an issued token stays valid. There is no server-side
// revocation; logout is the client discarding its token.
const SessionTTL = 24 * time.Hour * 7

// Claims are the JWT claims carried by a session token. The subject is the
// user record id, not the email, so identity survives record migrations.
// No role claim exists: roles are resolved fresh from the directory on every
// authorization check.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Session is a verified token bound to a request.
type Session struct {
	UserID primitive.ObjectID
	Email  string
}

// NewToken mints a signed session token for the user.
func NewToken(secret string, user *models.User) (string, error) {
	claims := &Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a session token and returns the session it binds.
func ParseToken(secret, tokenString string) (*Session, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, errors.New("invalid user id in token")
	}
	return &Session{UserID: userID, Email: claims.Email}, nil
}
