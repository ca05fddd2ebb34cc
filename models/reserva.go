package models

import (
	"math"
	"time"
)

// EstadoReserva define los estados posibles de una reserva
type EstadoReserva string

const (
	EstadoReservada  EstadoReserva = "RESERVADA"  // Creada, sin pago completo
	EstadoConfirmada EstadoReserva = "CONFIRMADA" // Pago completo registrado
	EstadoEfectuada  EstadoReserva = "EFECTUADA"  // Huésped hizo check-in
	EstadoFinalizada EstadoReserva = "FINALIZADA" // Check-out con pago completo
	EstadoAdeudada   EstadoReserva = "ADEUDADA"   // Check-out con saldo pendiente
	EstadoCancelada  EstadoReserva = "CANCELADA"  // Cancelada, estado terminal
	EstadoBloqueada  EstadoReserva = "BLOQUEADA"  // Bloqueo administrativo de la habitación
	EstadoCerrada    EstadoReserva = "CERRADA"    // Cierre administrativo de la habitación
)

// Pago status
const (
	PagoAprobado  = "APPROVED"
	PagoPendiente = "PENDING"
	PagoRechazado = "REJECTED"
)

// Review tipo
const (
	ReviewCliente = "CLIENTE"
	ReviewHost    = "HOST"
)

// EstadosBloqueantes son los estados cuyo solapamiento de fechas hace que una
// habitación no aparezca en la búsqueda de disponibilidad
func EstadosBloqueantes() []EstadoReserva {
	return []EstadoReserva{
		EstadoReservada,
		EstadoConfirmada,
		EstadoEfectuada,
		EstadoBloqueada,
		EstadoCerrada,
	}
}

type Reserva struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	HabitacionID  uint          `json:"habitacionId" gorm:"index"`
	HotelID       uint          `json:"hotelId"`
	CheckIn       time.Time     `json:"checkIn" gorm:"index"`
	CheckOut      time.Time     `json:"checkOut" gorm:"index"`
	PrecioNoche   float64       `json:"precioNoche"` // Snapshot al crear, nunca recalculado
	PrecioTotal   float64       `json:"precioTotal"` // noches * precioNoche, fijo desde la creación
	HuespedID     *uint         `json:"huespedId,omitempty"`
	NombreHuesped string        `json:"nombreHuesped,omitempty"`
	EmailHuesped  string        `json:"emailHuesped,omitempty"`
	Estado        EstadoReserva `json:"estado" gorm:"type:varchar(16);index"`
	Version       int           `json:"-" gorm:"default:1"`
	Pagos         []Pago        `json:"pagos" gorm:"foreignKey:ReservaID"`
	Reviews       []Review      `json:"reviews" gorm:"foreignKey:ReservaID"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Pago es una entrada inmutable del libro de pagos de una reserva.
// Nunca se actualiza ni se elimina; el orden de inserción se preserva por ID.
type Pago struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ReservaID     uint      `json:"reservaId" gorm:"index"`
	Metodo        string    `json:"metodo"`
	TransaccionID string    `json:"transaccionId,omitempty"`
	Monto         float64   `json:"monto"`
	Estado        string    `json:"estado"` // APPROVED, PENDING, REJECTED
	Fecha         time.Time `json:"fecha"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Review es una reseña asociada a la reserva. Cada reserva admite a lo sumo
// una review de tipo CLIENTE y una de tipo HOST, cada una escrita una sola vez.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ReservaID  uint      `json:"reservaId" gorm:"index"`
	Tipo       string    `json:"tipo" gorm:"type:varchar(8)"`
	Rating     float64   `json:"rating"` // 1 a 5, medios puntos permitidos
	Comentario string    `json:"comentario"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Noches devuelve la cantidad de noches de la estadía, redondeada hacia arriba
func (r *Reserva) Noches() int {
	return CalcularNoches(r.CheckIn, r.CheckOut)
}

// CalcularNoches calcula noches entre dos fechas, ceil por fracciones de día
func CalcularNoches(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// TotalAprobado suma los montos de los pagos con estado APPROVED
func (r *Reserva) TotalAprobado() float64 {
	total := 0.0
	for _, p := range r.Pagos {
		if p.Estado == PagoAprobado {
			total += p.Monto
		}
	}
	return total
}

// PagoCompleto indica si los pagos aprobados cubren el precio total
func (r *Reserva) PagoCompleto() bool {
	return r.TotalAprobado() >= r.PrecioTotal
}

// BuscarReview devuelve la review del tipo dado, o nil si no existe
func (r *Reserva) BuscarReview(tipo string) *Review {
	for i := range r.Reviews {
		if r.Reviews[i].Tipo == tipo {
			return &r.Reviews[i]
		}
	}
	return nil
}

// EsAdministrativa indica si la reserva es un bloqueo o cierre sin huésped
func (r *Reserva) EsAdministrativa() bool {
	return r.Estado == EstadoBloqueada || r.Estado == EstadoCerrada
}

// Solapa indica si la estadía intersecta el rango [desde, hasta) semiabierto
func (r *Reserva) Solapa(desde, hasta time.Time) bool {
	return r.CheckIn.Before(hasta) && r.CheckOut.After(desde)
}
