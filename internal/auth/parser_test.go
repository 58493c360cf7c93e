package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/fleetops-api/internal/auth"
	"github.com/nurpe/fleetops-api/internal/model"
)

const secret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return raw
}

func TestParser_ValidToken(t *testing.T) {
	userID := uuid.New()
	companyID := uuid.New()
	raw := signToken(t, jwt.MapClaims{
		"sub":        userID.String(),
		"role":       "manager",
		"company_id": companyID.String(),
		"exp":        time.Now().Add(time.Hour).Unix(),
	}, secret)

	principal, err := auth.NewParser(secret).Parse(raw)

	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, model.RoleManager, principal.Role)
	require.NotNil(t, principal.CompanyID)
	assert.Equal(t, companyID, *principal.CompanyID)
	assert.True(t, principal.CanWrite())
}

func TestParser_NoCompanyClaim(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, secret)

	principal, err := auth.NewParser(secret).Parse(raw)

	require.NoError(t, err)
	assert.Nil(t, principal.CompanyID)
	assert.True(t, principal.IsAdmin())
}

func TestParser_ExpiredToken(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "ADMIN",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	}, secret)

	_, err := auth.NewParser(secret).Parse(raw)

	assert.Error(t, err)
}

func TestParser_WrongSecret(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, "other-secret")

	_, err := auth.NewParser(secret).Parse(raw)

	assert.Error(t, err)
}

func TestParser_BadSubject(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":  "not-a-uuid",
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, secret)

	_, err := auth.NewParser(secret).Parse(raw)

	assert.Error(t, err)
}
