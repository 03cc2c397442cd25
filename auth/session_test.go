package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/noorix/hub/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "alice@example.com"}
	token, err := NewToken(testSecret, user)
	require.NoError(t, err)

	sess, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sess.UserID)
	assert.Equal(t, user.Email, sess.Email)
}

func TestTokenCarriesNoRole(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "admin@example.com", Role: models.RoleAdmin}
	token, err := NewToken(testSecret, user)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	// The subject is the record id, not the email, and there is no role
	// claim to go stale.
	assert.Equal(t, user.ID.Hex(), claims.Subject)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "alice@example.com"}
	token, err := NewToken(testSecret, user)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	claims := &Claims{
		UserID: primitive.NewObjectID().Hex(),
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnexpectedAlg(t *testing.T) {
	claims := &Claims{
		UserID: primitive.NewObjectID().Hex(),
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestParseTokenBadUserID(t *testing.T) {
	claims := &Claims{
		UserID: "not-a-hex-object-id",
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}
