package services

import (
	"time"

	"hotelera/models"
)

// TarifaStore provee las tarifas candidatas para el resolver
type TarifaStore interface {
	VigentesPorTipoYFecha(tipoHabitacionID uint, fecha time.Time) ([]models.Tarifa, error)
}

// CatalogoStore provee lecturas del catálogo de hoteles y habitaciones
type CatalogoStore interface {
	Habitaciones() ([]models.Habitacion, error)
	HabitacionPorID(id uint) (*models.Habitacion, error)
}

// ReservaStore persiste reservas. Toda operación que muta una reserva es
// atómica: o se aplica la transición completa (estado + pago + review) o nada.
type ReservaStore interface {
	// Crear inserta una reserva sin chequeo de solapamiento (bloqueos y
	// cierres administrativos)
	Crear(r *models.Reserva) error

	// CrearConChequeo inserta la reserva revalidando dentro de la transacción
	// que no exista otra reserva bloqueante solapada; devuelve ErrConflicto
	// ante una violación
	CrearConChequeo(r *models.Reserva, bloqueantes []models.EstadoReserva) error

	// PorID carga la reserva con sus pagos (en orden de inserción) y reviews;
	// devuelve ErrNoEncontrado si no existe
	PorID(id uint) (*models.Reserva, error)

	// SolapadasPorHabitacion devuelve las reservas de la habitación en alguno
	// de los estados dados cuya estadía intersecta [desde, hasta)
	SolapadasPorHabitacion(habitacionID uint, desde, hasta time.Time, estados []models.EstadoReserva) ([]models.Reserva, error)

	// ReservadasConCheckInAnterior devuelve reservas en estado RESERVADA cuyo
	// check-in ya pasó
	ReservadasConCheckInAnterior(fecha time.Time) ([]models.Reserva, error)

	// AplicarTransicion persiste el nuevo estado de la reserva con un
	// compare-and-swap sobre la columna de versión, y agrega el pago o la
	// review si se informan. Si la versión ya no coincide (transición
	// concurrente ganadora) devuelve ErrTransicionInvalida sin aplicar nada.
	AplicarTransicion(r *models.Reserva, versionPrevia int, pago *models.Pago, review *models.Review) error
}
