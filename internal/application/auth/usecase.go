package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
	"github.com/Mackewinsson/facturacion-module-sub000/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	empresaRepo repository.EmpresaRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, empresaRepo repository.EmpresaRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, empresaRepo: empresaRepo, jwtCfg: jwtCfg}
}

func roleValido(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleContable, entity.RoleComercial:
		return true
	}
	return false
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe en esa empresa.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.EmpresaID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.usuarioRepo.GetByEmailAndEmpresa(in.Email, in.EmpresaID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	empresa, err := uc.empresaRepo.GetByID(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound // empresa no existe
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleComercial
	}
	if !roleValido(role) {
		return nil, domain.ErrInvalidInput
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		EmpresaID:    in.EmpresaID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       nombre,
		Role:         role,
		Estado:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUserResponse(usuario), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if usuario.Estado != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.EmpresaID, usuario.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(usuario),
	}, nil
}

func toUserResponse(u *entity.Usuario) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		EmpresaID: u.EmpresaID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Role:      u.Role,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
