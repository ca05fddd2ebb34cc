package repository

import (
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"hotelera/errors"
	"hotelera/models"
)

// ReservaRepository implementa services.ReservaStore sobre gorm
type ReservaRepository struct {
	db *gorm.DB
}

func NewReservaRepository(db *gorm.DB) *ReservaRepository {
	return &ReservaRepository{db: db}
}

// Crear inserta la reserva sin chequeo de solapamiento
func (r *ReservaRepository) Crear(reserva *models.Reserva) error {
	return r.db.Create(reserva).Error
}

// CrearConChequeo inserta la reserva revalidando el solapamiento dentro de la
// misma transacción. El chequeo optimista alcanza: si otra reserva bloqueante
// entró primero, esta se rechaza con ErrConflicto.
func (r *ReservaRepository) CrearConChequeo(reserva *models.Reserva, bloqueantes []models.EstadoReserva) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var solapadas int64
		err := tx.Model(&models.Reserva{}).
			Where("habitacion_id = ? AND estado IN ? AND check_in < ? AND check_out > ?",
				reserva.HabitacionID, bloqueantes, reserva.CheckOut, reserva.CheckIn).
			Count(&solapadas).Error
		if err != nil {
			return err
		}
		if solapadas > 0 {
			return errors.ErrConflicto
		}
		return tx.Create(reserva).Error
	})
}

// PorID carga la reserva con pagos en orden de inserción y reviews
func (r *ReservaRepository) PorID(id uint) (*models.Reserva, error) {
	var reserva models.Reserva
	err := r.db.
		Preload("Pagos", func(db *gorm.DB) *gorm.DB {
			return db.Order("pagos.id ASC")
		}).
		Preload("Reviews").
		First(&reserva, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNoEncontrado
		}
		return nil, err
	}
	return &reserva, nil
}

// SolapadasPorHabitacion devuelve reservas de la habitación en los estados
// dados cuya estadía intersecta [desde, hasta)
func (r *ReservaRepository) SolapadasPorHabitacion(habitacionID uint, desde, hasta time.Time, estados []models.EstadoReserva) ([]models.Reserva, error) {
	var reservas []models.Reserva
	err := r.db.
		Where("habitacion_id = ? AND estado IN ? AND check_in < ? AND check_out > ?",
			habitacionID, estados, hasta, desde).
		Find(&reservas).Error
	if err != nil {
		return nil, err
	}
	return reservas, nil
}

// ReservadasConCheckInAnterior devuelve reservas RESERVADA con check-in vencido
func (r *ReservaRepository) ReservadasConCheckInAnterior(fecha time.Time) ([]models.Reserva, error) {
	var reservas []models.Reserva
	err := r.db.
		Preload("Pagos").
		Where("estado = ? AND check_in < ?", models.EstadoReservada, fecha).
		Find(&reservas).Error
	if err != nil {
		return nil, err
	}
	return reservas, nil
}

// AplicarTransicion persiste la transición con compare-and-swap sobre la
// versión. Cero filas afectadas significa que otra transición concurrente
// ganó: se devuelve ErrTransicionInvalida y no se aplica nada.
func (r *ReservaRepository) AplicarTransicion(reserva *models.Reserva, versionPrevia int, pago *models.Pago, review *models.Review) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Reserva{}).
			Where("id = ? AND version = ?", reserva.ID, versionPrevia).
			Updates(map[string]interface{}{
				"estado":  reserva.Estado,
				"version": versionPrevia + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.ErrTransicionInvalida
		}

		if pago != nil {
			pago.ID = 0
			pago.ReservaID = reserva.ID
			if err := tx.Create(pago).Error; err != nil {
				return err
			}
		}

		if review != nil {
			review.ID = 0
			review.ReservaID = reserva.ID
			if err := tx.Create(review).Error; err != nil {
				return err
			}
		}

		reserva.Version = versionPrevia + 1
		return nil
	})
}

// Listar devuelve todas las reservas con sus asociaciones, para los listados
// administrativos
func (r *ReservaRepository) Listar() ([]models.Reserva, error) {
	var reservas []models.Reserva
	err := r.db.
		Preload("Pagos", func(db *gorm.DB) *gorm.DB {
			return db.Order("pagos.id ASC")
		}).
		Preload("Reviews").
		Order("id ASC").
		Find(&reservas).Error
	if err != nil {
		return nil, err
	}
	return reservas, nil
}
