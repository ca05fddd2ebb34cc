package services

import (
	"time"

	"hotelera/errors"
	"hotelera/models"
)

func fecha(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

type fakeTarifaStore struct {
	tarifas []models.Tarifa
}

func (f *fakeTarifaStore) VigentesPorTipoYFecha(tipoHabitacionID uint, fecha time.Time) ([]models.Tarifa, error) {
	var vigentes []models.Tarifa
	for _, t := range f.tarifas {
		if t.TipoHabitacionID == tipoHabitacionID && t.Vigente(fecha) {
			vigentes = append(vigentes, t)
		}
	}
	return vigentes, nil
}

type fakeCatalogoStore struct {
	habitaciones []models.Habitacion
}

func (f *fakeCatalogoStore) Habitaciones() ([]models.Habitacion, error) {
	out := make([]models.Habitacion, len(f.habitaciones))
	copy(out, f.habitaciones)
	return out, nil
}

func (f *fakeCatalogoStore) HabitacionPorID(id uint) (*models.Habitacion, error) {
	for i := range f.habitaciones {
		if f.habitaciones[i].ID == id {
			hab := f.habitaciones[i]
			return &hab, nil
		}
	}
	return nil, errors.ErrNoEncontrado
}

// fakeReservaStore guarda reservas en memoria respetando el contrato de
// ReservaStore: chequeo de solapamiento en la inserción y compare-and-swap
// de versión en las transiciones.
type fakeReservaStore struct {
	reservas map[uint]*models.Reserva
	nextID   uint
	pagoID   uint
	reviewID uint
}

func newFakeReservaStore() *fakeReservaStore {
	return &fakeReservaStore{reservas: make(map[uint]*models.Reserva)}
}

func (f *fakeReservaStore) Crear(r *models.Reserva) error {
	f.nextID++
	r.ID = f.nextID
	guardada := *r
	guardada.Pagos = append([]models.Pago(nil), r.Pagos...)
	guardada.Reviews = append([]models.Review(nil), r.Reviews...)
	f.reservas[r.ID] = &guardada
	return nil
}

func (f *fakeReservaStore) CrearConChequeo(r *models.Reserva, bloqueantes []models.EstadoReserva) error {
	for _, existente := range f.reservas {
		if existente.HabitacionID != r.HabitacionID {
			continue
		}
		bloqueante := false
		for _, estado := range bloqueantes {
			if existente.Estado == estado {
				bloqueante = true
				break
			}
		}
		if bloqueante && existente.Solapa(r.CheckIn, r.CheckOut) {
			return errors.ErrConflicto
		}
	}
	return f.Crear(r)
}

func (f *fakeReservaStore) PorID(id uint) (*models.Reserva, error) {
	guardada, ok := f.reservas[id]
	if !ok {
		return nil, errors.ErrNoEncontrado
	}
	copia := *guardada
	copia.Pagos = append([]models.Pago(nil), guardada.Pagos...)
	copia.Reviews = append([]models.Review(nil), guardada.Reviews...)
	return &copia, nil
}

func (f *fakeReservaStore) SolapadasPorHabitacion(habitacionID uint, desde, hasta time.Time, estados []models.EstadoReserva) ([]models.Reserva, error) {
	var out []models.Reserva
	for _, r := range f.reservas {
		if r.HabitacionID != habitacionID || !r.Solapa(desde, hasta) {
			continue
		}
		for _, estado := range estados {
			if r.Estado == estado {
				out = append(out, *r)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeReservaStore) ReservadasConCheckInAnterior(fecha time.Time) ([]models.Reserva, error) {
	var out []models.Reserva
	for _, r := range f.reservas {
		if r.Estado == models.EstadoReservada && r.CheckIn.Before(fecha) {
			copia := *r
			copia.Pagos = append([]models.Pago(nil), r.Pagos...)
			out = append(out, copia)
		}
	}
	return out, nil
}

func (f *fakeReservaStore) AplicarTransicion(r *models.Reserva, versionPrevia int, pago *models.Pago, review *models.Review) error {
	guardada, ok := f.reservas[r.ID]
	if !ok {
		return errors.ErrNoEncontrado
	}
	if guardada.Version != versionPrevia {
		return errors.ErrTransicionInvalida
	}

	guardada.Estado = r.Estado
	guardada.Version = versionPrevia + 1

	if pago != nil {
		f.pagoID++
		nuevo := *pago
		nuevo.ID = f.pagoID
		nuevo.ReservaID = r.ID
		guardada.Pagos = append(guardada.Pagos, nuevo)
	}

	if review != nil {
		f.reviewID++
		nueva := *review
		nueva.ID = f.reviewID
		nueva.ReservaID = r.ID
		guardada.Reviews = append(guardada.Reviews, nueva)
	}

	r.Version = guardada.Version
	return nil
}
