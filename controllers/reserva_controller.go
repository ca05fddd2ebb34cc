package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelera/dto"
	"hotelera/models"
	"hotelera/repository"
	"hotelera/response"
	"hotelera/services"
)

// ReservaController expone el ciclo de vida de la reserva sobre HTTP. Toda la
// lógica de transiciones vive en el servicio; acá solo se parsean requests y
// se traducen errores.
type ReservaController struct {
	service  *services.ReservaService
	reservas *repository.ReservaRepository
}

func NewReservaController(service *services.ReservaService, reservas *repository.ReservaRepository) *ReservaController {
	return &ReservaController{service: service, reservas: reservas}
}

// CreateReserva crea una reserva en estado RESERVADA
func (rc *ReservaController) CreateReserva(c *gin.Context) {
	var req dto.CrearReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	checkIn, err := parseFecha(req.CheckIn)
	if err != nil {
		response.BadRequest(c, "Fecha de check-in inválida, formato dd/mm/aaaa")
		return
	}
	checkOut, err := parseFecha(req.CheckOut)
	if err != nil {
		response.BadRequest(c, "Fecha de check-out inválida, formato dd/mm/aaaa")
		return
	}

	params := services.CrearReservaParams{
		HabitacionID:  req.HabitacionID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		NombreHuesped: req.NombreHuesped,
		EmailHuesped:  req.EmailHuesped,
	}

	// Si el request viene autenticado la reserva queda asociada al huésped
	if userID, ok := c.Get("userID"); ok {
		id := userID.(uint)
		params.HuespedID = &id
	}

	reserva, err := rc.service.CrearReserva(params)
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.NuevaReservaResponse(reserva))
}

// GetReservaDetail devuelve la reserva con sus pagos y reviews
func (rc *ReservaController) GetReservaDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reserva, err := rc.reservas.PorID(id)
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.NuevaReservaResponse(reserva))
}

// GetReservas lista las reservas paginadas para el panel administrativo
func (rc *ReservaController) GetReservas(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	reservas, err := rc.reservas.Listar()
	if err != nil {
		manejarError(c, err)
		return
	}

	total := len(reservas)
	desde := (page - 1) * limit
	if desde > total {
		desde = total
	}
	hasta := desde + limit
	if hasta > total {
		hasta = total
	}

	resultado := make([]dto.ReservaResponse, 0, hasta-desde)
	for i := desde; i < hasta; i++ {
		resultado = append(resultado, dto.NuevaReservaResponse(&reservas[i]))
	}

	response.SuccessWithPagination(c, resultado, page, limit, total)
}

// RegistrarPago agrega un pago al libro de la reserva
func (rc *ReservaController) RegistrarPago(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.PagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	reserva, err := rc.service.RegistrarPago(id, models.Pago{
		Metodo:        req.Metodo,
		TransaccionID: req.TransaccionID,
		Monto:         req.Monto,
		Estado:        req.Estado,
	})
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.NuevaReservaResponse(reserva))
}

// CheckIn registra la llegada del huésped
func (rc *ReservaController) CheckIn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reserva, err := rc.service.CheckIn(id)
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.NuevaReservaResponse(reserva))
}

// CheckOut registra la salida, con review del host opcional
func (rc *ReservaController) CheckOut(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.CheckOutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Datos inválidos")
			return
		}
	}

	var review *services.ReviewParams
	if req.Review != nil {
		review = &services.ReviewParams{
			Rating:     req.Review.Rating,
			Comentario: req.Review.Comentario,
		}
	}

	reserva, err := rc.service.CheckOut(id, review)
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.NuevaReservaResponse(reserva))
}

// CancelarReserva pasa la reserva a CANCELADA
func (rc *ReservaController) CancelarReserva(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	reserva, err := rc.service.Cancelar(id)
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.NuevaReservaResponse(reserva))
}

// AgregarRating escribe la review del cliente sobre la estadía
func (rc *ReservaController) AgregarRating(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	reserva, err := rc.service.AgregarRatingCliente(id, services.ReviewParams{
		Rating:     req.Rating,
		Comentario: req.Comentario,
	})
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.NuevaReservaResponse(reserva))
}

// BloquearHabitacion marca una habitación como no disponible en un rango
func (rc *ReservaController) BloquearHabitacion(c *gin.Context) {
	rc.crearAdministrativa(c, rc.service.BloquearHabitacion)
}

// CerrarHabitacion cierra una habitación en un rango
func (rc *ReservaController) CerrarHabitacion(c *gin.Context) {
	rc.crearAdministrativa(c, rc.service.CerrarHabitacion)
}

func (rc *ReservaController) crearAdministrativa(c *gin.Context, crear func(uint, time.Time, time.Time) (*models.Reserva, error)) {
	var req dto.BloqueoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Datos inválidos")
		return
	}

	desde, err := parseFecha(req.Desde)
	if err != nil {
		response.BadRequest(c, "Fecha desde inválida, formato dd/mm/aaaa")
		return
	}
	hasta, err := parseFecha(req.Hasta)
	if err != nil {
		response.BadRequest(c, "Fecha hasta inválida, formato dd/mm/aaaa")
		return
	}

	reserva, err := crear(req.HabitacionID, desde, hasta)
	if err != nil {
		manejarError(c, err)
		return
	}

	response.Success(c, dto.NuevaReservaResponse(reserva))
}
