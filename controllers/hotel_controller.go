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

// HotelController administra el CRUD de hoteles. Las mutaciones invalidan el
// cache del catálogo para que la búsqueda no sirva datos viejos.
type HotelController struct {
	db       *gorm.DB
	catalogo *repository.CatalogoRepository
}

func NewHotelController(db *gorm.DB, catalogo *repository.CatalogoRepository) *HotelController {
	return &HotelController{db: db, catalogo: catalogo}
}

func (hc *HotelController) GetHoteles(c *gin.Context) {
	var hoteles []models.Hotel
	if err := hc.db.Order("id ASC").Find(&hoteles).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, hoteles)
}

func (hc *HotelController) GetHotelDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var hotel models.Hotel
	if err := hc.db.Preload("Habitaciones").First(&hotel, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}
	response.Success(c, hotel)
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	var req dto.CrearHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	hotel := models.Hotel{
		Nombre:         req.Nombre,
		CUIT:           req.CUIT,
		Domicilio:      req.Domicilio,
		Telefono:       req.Telefono,
		CorreoContacto: req.CorreoContacto,
		Categoria:      req.Categoria,
		Latitud:        req.Latitud,
		Longitud:       req.Longitud,
		Amenities:      req.Amenities,
	}

	if err := validator.ValidarHotel(&hotel); err != nil {
		manejarError(c, err)
		return
	}

	if err := hc.db.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	hc.catalogo.InvalidarCache()
	response.Success(c, hotel)
}

func (hc *HotelController) UpdateHotel(c *gin.Context) {
	var req dto.ActualizarHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	var hotel models.Hotel
	if err := hc.db.First(&hotel, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Nombre != "" {
		hotel.Nombre = req.Nombre
	}
	if req.CUIT != "" {
		hotel.CUIT = req.CUIT
	}
	if req.Domicilio != "" {
		hotel.Domicilio = req.Domicilio
	}
	if req.Telefono != "" {
		hotel.Telefono = req.Telefono
	}
	if req.CorreoContacto != "" {
		hotel.CorreoContacto = req.CorreoContacto
	}
	if req.Categoria != 0 {
		hotel.Categoria = req.Categoria
	}
	if req.Latitud != nil {
		hotel.Latitud = req.Latitud
	}
	if req.Longitud != nil {
		hotel.Longitud = req.Longitud
	}
	if req.Amenities != nil {
		hotel.Amenities = req.Amenities
	}

	if err := validator.ValidarHotel(&hotel); err != nil {
		manejarError(c, err)
		return
	}

	if err := hc.db.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	hc.catalogo.InvalidarCache()
	response.Success(c, hotel)
}
