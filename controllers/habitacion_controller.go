package controllers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelera/dto"
	"hotelera/models"
	"hotelera/repository"
	"hotelera/response"
	"hotelera/validator"
)

// HabitacionController administra habitaciones y tipos de habitación
type HabitacionController struct {
	db       *gorm.DB
	catalogo *repository.CatalogoRepository
}

func NewHabitacionController(db *gorm.DB, catalogo *repository.CatalogoRepository) *HabitacionController {
	return &HabitacionController{db: db, catalogo: catalogo}
}

// GetHabitaciones lista el catálogo completo, sirviendo del cache si está
func (hc *HabitacionController) GetHabitaciones(c *gin.Context) {
	habitaciones, err := hc.catalogo.Habitaciones()
	if err != nil {
		response.ServerError(c)
		return
	}

	resultado := make([]dto.HabitacionResponse, 0, len(habitaciones))
	for i := range habitaciones {
		resultado = append(resultado, dto.NuevaHabitacionResponse(&habitaciones[i]))
	}
	response.Success(c, resultado)
}

func (hc *HabitacionController) GetHabitacionDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	habitacion, err := hc.catalogo.HabitacionPorID(id)
	if err != nil {
		manejarError(c, err)
		return
	}
	response.Success(c, dto.NuevaHabitacionResponse(habitacion))
}

func (hc *HabitacionController) CreateHabitacion(c *gin.Context) {
	var req dto.CrearHabitacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	// El hotel y el tipo tienen que existir antes de crear la habitación
	var hotel models.Hotel
	if err := hc.db.First(&hotel, req.HotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.BadRequest(c, "El hotel no existe")
			return
		}
		response.ServerError(c)
		return
	}
	var tipo models.TipoHabitacion
	if err := hc.db.First(&tipo, req.TipoHabitacionID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.BadRequest(c, "El tipo de habitación no existe")
			return
		}
		response.ServerError(c)
		return
	}

	habitacion := models.Habitacion{
		HotelID:          req.HotelID,
		TipoHabitacionID: req.TipoHabitacionID,
		Numero:           req.Numero,
		Piso:             req.Piso,
	}

	if err := hc.db.Create(&habitacion).Error; err != nil {
		response.ServerError(c)
		return
	}

	hc.catalogo.InvalidarCache()
	response.Success(c, habitacion)
}

func (hc *HabitacionController) GetTiposHabitacion(c *gin.Context) {
	var tipos []models.TipoHabitacion
	if err := hc.db.Order("id ASC").Find(&tipos).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, tipos)
}

func (hc *HabitacionController) CreateTipoHabitacion(c *gin.Context) {
	var req dto.CrearTipoHabitacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	tipo := models.TipoHabitacion{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Capacidad:   req.Capacidad,
	}

	if err := validator.ValidarTipoHabitacion(&tipo); err != nil {
		manejarError(c, err)
		return
	}

	if err := hc.db.Create(&tipo).Error; err != nil {
		response.ServerError(c)
		return
	}

	hc.catalogo.InvalidarCache()
	response.Success(c, tipo)
}
