package dto

import (
	"time"

	"hotelera/models"
)

// FormatoFecha es el formato de fechas de los requests, dd/mm/aaaa
const FormatoFecha = "02/01/2006"

// CrearReservaRequest es el DTO para crear una reserva
type CrearReservaRequest struct {
	HabitacionID  uint   `json:"habitacionId" binding:"required"`
	CheckIn       string `json:"checkIn" binding:"required"`
	CheckOut      string `json:"checkOut" binding:"required"`
	NombreHuesped string `json:"nombreHuesped"`
	EmailHuesped  string `json:"emailHuesped"`
}

// PagoRequest es el DTO para registrar un pago sobre una reserva
type PagoRequest struct {
	Metodo        string  `json:"metodo" binding:"required"`
	TransaccionID string  `json:"transaccionId"`
	Monto         float64 `json:"monto" binding:"required"`
	Estado        string  `json:"estado" binding:"required"`
}

// ReviewRequest es el DTO para una review de host o de cliente
type ReviewRequest struct {
	Rating     float64 `json:"rating" binding:"required"`
	Comentario string  `json:"comentario"`
}

// CheckOutRequest es el DTO del check-out; la review del host es opcional
type CheckOutRequest struct {
	Review *ReviewRequest `json:"review"`
}

// BloqueoRequest es el DTO para bloquear o cerrar una habitación en un rango
type BloqueoRequest struct {
	HabitacionID uint   `json:"habitacionId" binding:"required"`
	Desde        string `json:"desde" binding:"required"`
	Hasta        string `json:"hasta" binding:"required"`
}

// PagoResponse es una entrada del libro de pagos
type PagoResponse struct {
	ID            uint    `json:"id"`
	Metodo        string  `json:"metodo"`
	TransaccionID string  `json:"transaccionId,omitempty"`
	Monto         float64 `json:"monto"`
	Estado        string  `json:"estado"`
	Fecha         string  `json:"fecha"`
}

// ReviewResponse es una review asociada a la reserva
type ReviewResponse struct {
	ID         uint    `json:"id"`
	Tipo       string  `json:"tipo"`
	Rating     float64 `json:"rating"`
	Comentario string  `json:"comentario"`
}

// ReservaResponse es el DTO completo de una reserva con pagos y reviews
type ReservaResponse struct {
	ID            uint             `json:"id"`
	HabitacionID  uint             `json:"habitacionId"`
	HotelID       uint             `json:"hotelId"`
	CheckIn       string           `json:"checkIn"`
	CheckOut      string           `json:"checkOut"`
	Noches        int              `json:"noches"`
	PrecioNoche   float64          `json:"precioNoche"`
	PrecioTotal   float64          `json:"precioTotal"`
	TotalAprobado float64          `json:"totalAprobado"`
	NombreHuesped string           `json:"nombreHuesped,omitempty"`
	EmailHuesped  string           `json:"emailHuesped,omitempty"`
	Estado        string           `json:"estado"`
	Pagos         []PagoResponse   `json:"pagos"`
	Reviews       []ReviewResponse `json:"reviews"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// NuevaReservaResponse arma el DTO desde el modelo
func NuevaReservaResponse(r *models.Reserva) ReservaResponse {
	pagos := make([]PagoResponse, 0, len(r.Pagos))
	for _, p := range r.Pagos {
		pagos = append(pagos, PagoResponse{
			ID:            p.ID,
			Metodo:        p.Metodo,
			TransaccionID: p.TransaccionID,
			Monto:         p.Monto,
			Estado:        p.Estado,
			Fecha:         p.Fecha.Format(FormatoFecha),
		})
	}

	reviews := make([]ReviewResponse, 0, len(r.Reviews))
	for _, rv := range r.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:         rv.ID,
			Tipo:       rv.Tipo,
			Rating:     rv.Rating,
			Comentario: rv.Comentario,
		})
	}

	return ReservaResponse{
		ID:            r.ID,
		HabitacionID:  r.HabitacionID,
		HotelID:       r.HotelID,
		CheckIn:       r.CheckIn.Format(FormatoFecha),
		CheckOut:      r.CheckOut.Format(FormatoFecha),
		Noches:        r.Noches(),
		PrecioNoche:   r.PrecioNoche,
		PrecioTotal:   r.PrecioTotal,
		TotalAprobado: r.TotalAprobado(),
		NombreHuesped: r.NombreHuesped,
		EmailHuesped:  r.EmailHuesped,
		Estado:        string(r.Estado),
		Pagos:         pagos,
		Reviews:       reviews,
		CreatedAt:     r.CreatedAt,
	}
}
