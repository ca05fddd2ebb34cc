package services

import (
	stderrors "errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelera/errors"
	"hotelera/models"
	"hotelera/validator"
)

// AuthService maneja registro y login de usuarios
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Registrar crea un usuario nuevo con el password hasheado
func (s *AuthService) Registrar(huesped *models.Huesped) error {
	if err := validator.ValidarHuesped(huesped); err != nil {
		return err
	}

	var existente models.Huesped
	if err := s.db.Where("email = ?", huesped.Email).First(&existente).Error; err == nil {
		return errors.ErrUsuarioExiste
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := HashPassword(huesped.Password)
	if err != nil {
		return err
	}
	huesped.Password = hashed

	return s.db.Create(huesped).Error
}

// Login verifica las credenciales y emite un access token
func (s *AuthService) Login(email, password string) (string, *models.Huesped, error) {
	var huesped models.Huesped
	if err := s.db.Where("email = ?", email).First(&huesped).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errors.ErrNoAutorizado
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(huesped.Password), []byte(password)); err != nil {
		return "", nil, errors.ErrPasswordInvalido
	}

	token, err := GenerateToken(UserInfo{UserID: huesped.ID, Rol: huesped.Rol}, 60*24)
	if err != nil {
		return "", nil, err
	}

	return token, &huesped, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}
