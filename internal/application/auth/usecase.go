package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wideapple-api/internal/application/dto"
	"github.com/jhoicas/wideapple-api/internal/domain"
	"github.com/jhoicas/wideapple-api/internal/domain/entity"
	"github.com/jhoicas/wideapple-api/internal/domain/repository"
	"github.com/jhoicas/wideapple-api/pkg/jwt"
)

// Valores por defecto del vendor que se crea junto con cada usuario.
const (
	defaultVendorSpecies   = "Human"
	defaultVendorDimension = "Earth-1"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret            string
	RefreshSecret     string
	ExpMinutes        int
	RefreshExpMinutes int
	Issuer            string
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y perfil.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	vendorRepo repository.VendorRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, vendorRepo repository.VendorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, vendorRepo: vendorRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario (bcrypt sobre el password) y su vendor asociado
// ("Vendor <username>", especie Human, dimensión Earth-1). Devuelve
// ErrUsernameTaken si el username ya existe y ErrWeakPassword si el
// password no cumple la política.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:       in.Username,
		HashedPassword: string(hash),
		IsActive:       true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	userID := user.ID
	vendor := &entity.Vendor{
		Name:          "Vendor " + in.Username,
		Species:       defaultVendorSpecies,
		HomeDimension: defaultVendorDimension,
		UserID:        &userID,
	}
	if err := uc.vendorRepo.Create(vendor); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

// Login verifica username/password y retorna access + refresh token.
// El access token lleva el vendor id del usuario para que el motor de
// intercambios autorice sin ir a la DB.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	vendorID := int64(0)
	vendor, err := uc.vendorRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if vendor != nil {
		vendorID = vendor.ID
	}

	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, vendorID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.refreshKey(), user.ID, vendorID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

// Refresh valida el refresh token y emite un access token nuevo.
func (uc *AuthUseCase) Refresh(refreshToken string) (*dto.TokenResponse, error) {
	userID, vendorID, err := jwt.Parse(uc.refreshKey(), refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, userID, vendorID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: access, TokenType: "bearer"}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) refreshKey() string {
	if uc.jwtCfg.RefreshSecret != "" {
		return uc.jwtCfg.RefreshSecret
	}
	return uc.jwtCfg.Secret
}

// ValidatePassword exige al menos 8 caracteres con mayúscula, minúscula,
// dígito y carácter especial.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return domain.ErrWeakPassword
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return domain.ErrWeakPassword
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		IsActive: u.IsActive,
	}
}
