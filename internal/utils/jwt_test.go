package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-queue-server/internal/config"
	"hospital-queue-server/internal/models"
)

func testDoctor() *models.Doctor {
	return &models.Doctor{
		BaseModel:    models.BaseModel{ID: "doc-1"},
		Name:         "Dr. Test",
		DepartmentID: "dept-1",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 15}

	token, err := GenerateToken(testDoctor(), cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", claims.DoctorID)
	assert.Equal(t, "dept-1", claims.DepartmentID)
	assert.Equal(t, "doc-1", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 15}

	token, err := GenerateToken(testDoctor(), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: -1}

	token, err := GenerateToken(testDoctor(), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWTSecret)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
}
