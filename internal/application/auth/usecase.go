package auth

import (
	"github.com/wsuarezb/toolstock-api/internal/application/dto"
	"github.com/wsuarezb/toolstock-api/internal/domain"
	"github.com/wsuarezb/toolstock-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Config parámetros de la sesión de administración. El sistema es
// mono-operador: una sola contraseña (guardada como hash bcrypt en la
// configuración) abre la sesión administrativa.
type Config struct {
	AdminPasswordHash string
	JWTSecret         string
	ExpMinutes        int
	Issuer            string
}

// UseCase caso de uso de autenticación del administrador.
type UseCase struct {
	cfg Config
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(cfg Config) *UseCase {
	return &UseCase{cfg: cfg}
}

// Login verifica la contraseña de administración contra el hash configurado y
// emite un JWT. Sin hash configurado, el acceso administrativo está cerrado.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Password == "" || uc.cfg.AdminPasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, "admin", uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.cfg.ExpMinutes}, nil
}
