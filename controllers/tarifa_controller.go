package controllers

import (
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelera/dto"
	"hotelera/models"
	"hotelera/response"
	"hotelera/services"
	"hotelera/validator"
)

// TarifaController administra las ventanas de precios por tipo de habitación.
// Crear tarifas nunca recalcula reservas existentes: el precio de una reserva
// queda congelado al momento de crearla.
type TarifaController struct {
	db       *gorm.DB
	resolver *services.TarifaResolver
}

func NewTarifaController(db *gorm.DB, resolver *services.TarifaResolver) *TarifaController {
	return &TarifaController{db: db, resolver: resolver}
}

// GetTarifas lista tarifas, con filtro opcional por tipo de habitación
func (tc *TarifaController) GetTarifas(c *gin.Context) {
	tx := tc.db.Order("id ASC")

	if tipoFiltro := c.DefaultQuery("tipoHabitacionId", ""); tipoFiltro != "" {
		if tipoID, err := strconv.Atoi(tipoFiltro); err == nil {
			tx = tx.Where("tipo_habitacion_id = ?", tipoID)
		}
	}

	var tarifas []models.Tarifa
	if err := tx.Find(&tarifas).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, tarifas)
}

// CreateTarifa da de alta una ventana de precio. Las ventanas pueden
// solaparse; el resolver decide cuál aplica en cada fecha.
func (tc *TarifaController) CreateTarifa(c *gin.Context) {
	var req dto.CrearTarifaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	fechaInicio, err := parseFecha(req.FechaInicio)
	if err != nil {
		response.BadRequest(c, "Fecha de inicio inválida, formato dd/mm/aaaa")
		return
	}
	fechaFin, err := parseFecha(req.FechaFin)
	if err != nil {
		response.BadRequest(c, "Fecha de fin inválida, formato dd/mm/aaaa")
		return
	}

	var tipo models.TipoHabitacion
	if err := tc.db.First(&tipo, req.TipoHabitacionID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.BadRequest(c, "El tipo de habitación no existe")
			return
		}
		response.ServerError(c)
		return
	}

	tarifa := models.Tarifa{
		TipoHabitacionID: req.TipoHabitacionID,
		PrecioNoche:      req.PrecioNoche,
		FechaInicio:      fechaInicio,
		FechaFin:         fechaFin,
	}

	if err := validator.ValidarTarifa(&tarifa); err != nil {
		manejarError(c, err)
		return
	}

	if err := tc.db.Create(&tarifa).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, tarifa)
}

// ResolverTarifa devuelve la tarifa aplicable a un tipo y una fecha
func (tc *TarifaController) ResolverTarifa(c *gin.Context) {
	tipoID, err := strconv.ParseUint(c.Query("tipoHabitacionId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "tipoHabitacionId inválido")
		return
	}

	fecha, err := parseFecha(c.Query("fecha"))
	if err != nil {
		response.BadRequest(c, "Fecha inválida, formato dd/mm/aaaa")
		return
	}

	tarifa, err := tc.resolver.Resolver(uint(tipoID), fecha)
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, tarifa)
}
