package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T, password string) Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return Config{
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		ExpMinutes:        60,
		Issuer:            "toolstock-test",
	}
}

func TestLogin_ContraseñaCorrecta(t *testing.T) {
	uc := NewUseCase(testConfig(t, "s3creto"))

	resp, err := uc.Login(dto.LoginRequest{Password: "s3creto"})
	require.NoError(t, err)
	assert.Equal(t, 60, resp.ExpiresIn)

	subject, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLogin_ContraseñaIncorrecta(t *testing.T) {
	uc := NewUseCase(testConfig(t, "s3creto"))
	_, err := uc.Login(dto.LoginRequest{Password: "otra"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinHashConfigurado(t *testing.T) {
	uc := NewUseCase(Config{JWTSecret: "x", ExpMinutes: 60})
	_, err := uc.Login(dto.LoginRequest{Password: "cualquiera"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
