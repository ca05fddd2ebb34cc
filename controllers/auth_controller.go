package controllers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelera/dto"
	"hotelera/models"
	"hotelera/response"
	"hotelera/services"
	"hotelera/validator"
)

// AuthController maneja registro, login y perfil de huéspedes
type AuthController struct {
	db   *gorm.DB
	auth *services.AuthService
}

func NewAuthController(db *gorm.DB, auth *services.AuthService) *AuthController {
	return &AuthController{db: db, auth: auth}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	huesped := models.Huesped{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Password: req.Password,
		Telefono: req.Telefono,
		Rol:      models.RolHuesped,
	}

	if err := ac.auth.Registrar(&huesped); err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.NuevoHuespedResponse(&huesped))
}

func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	token, huesped, err := ac.auth.Login(req.Email, req.Password)
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: token,
		Huesped:     dto.NuevoHuespedResponse(huesped),
	})
}

// GetProfile devuelve el perfil del usuario autenticado con sus bancos
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		response.Unauthorized(c)
		return
	}

	var huesped models.Huesped
	if err := ac.db.Preload("Bancos").First(&huesped, userID.(uint)).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, huesped)
}

// AddBanco asocia una cuenta bancaria al usuario autenticado
func (ac *AuthController) AddBanco(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.BancoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	banco := models.Banco{
		HuespedID: userID.(uint),
		Nombre:    req.Nombre,
		CBU:       req.CBU,
	}

	if err := validator.ValidarBanco(&banco); err != nil {
		manejarError(c, err)
		return
	}

	if err := ac.db.Create(&banco).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, banco)
}

// GetBancos lista las cuentas bancarias del usuario autenticado
func (ac *AuthController) GetBancos(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		response.Unauthorized(c)
		return
	}

	var bancos []models.Banco
	if err := ac.db.Where("huesped_id = ?", userID.(uint)).Order("id ASC").Find(&bancos).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, bancos)
}

// DeleteBanco borra una cuenta bancaria propia
func (ac *AuthController) DeleteBanco(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var banco models.Banco
	if err := ac.db.Where("id = ? AND huesped_id = ?", id, userID.(uint)).First(&banco).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if err := ac.db.Delete(&banco).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": banco.ID})
}
