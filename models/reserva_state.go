package models

import "hotelera/errors"

// ReservaState define las transiciones permitidas desde cada estado.
// Toda operación no permitida devuelve ErrTransicionInvalida y deja la
// reserva sin modificar.
type ReservaState interface {
	Confirmar(r *Reserva) error
	CheckIn(r *Reserva) error
	CheckOut(r *Reserva, pagoCompleto bool) error
	Cancelar(r *Reserva) error
	PuedeRegistrarPago() bool
	PuedeAgregarRatingCliente() bool
}

// baseState rechaza todas las transiciones; cada estado habilita las suyas
type baseState struct{}

func (baseState) Confirmar(*Reserva) error             { return errors.ErrTransicionInvalida }
func (baseState) CheckIn(*Reserva) error               { return errors.ErrTransicionInvalida }
func (baseState) CheckOut(*Reserva, bool) error        { return errors.ErrTransicionInvalida }
func (baseState) Cancelar(*Reserva) error              { return errors.ErrTransicionInvalida }
func (baseState) PuedeRegistrarPago() bool             { return false }
func (baseState) PuedeAgregarRatingCliente() bool      { return false }

// ReservadaState reserva creada, esperando pago
type ReservadaState struct{ baseState }

func (ReservadaState) Confirmar(r *Reserva) error {
	r.Estado = EstadoConfirmada
	return nil
}

func (ReservadaState) Cancelar(r *Reserva) error {
	r.Estado = EstadoCancelada
	return nil
}

func (ReservadaState) PuedeRegistrarPago() bool { return true }

// ConfirmadaState pago completo, esperando check-in
type ConfirmadaState struct{ baseState }

func (ConfirmadaState) CheckIn(r *Reserva) error {
	r.Estado = EstadoEfectuada
	return nil
}

func (ConfirmadaState) Cancelar(r *Reserva) error {
	r.Estado = EstadoCancelada
	return nil
}

func (ConfirmadaState) PuedeRegistrarPago() bool { return true }

// EfectuadaState huésped alojado, esperando check-out
type EfectuadaState struct{ baseState }

func (EfectuadaState) CheckOut(r *Reserva, pagoCompleto bool) error {
	if pagoCompleto {
		r.Estado = EstadoFinalizada
	} else {
		r.Estado = EstadoAdeudada
	}
	return nil
}

func (EfectuadaState) PuedeRegistrarPago() bool { return true }

// FinalizadaState estadía terminada, admite rating del cliente
type FinalizadaState struct{ baseState }

func (FinalizadaState) PuedeAgregarRatingCliente() bool { return true }

// AdeudadaState check-out con saldo pendiente; admite pagos para saldar
type AdeudadaState struct{ baseState }

func (AdeudadaState) PuedeRegistrarPago() bool { return true }

// CanceladaState estado terminal
type CanceladaState struct{ baseState }

// BloqueadaState bloqueo administrativo, sin huésped
type BloqueadaState struct{ baseState }

// CerradaState cierre administrativo, sin huésped
type CerradaState struct{ baseState }

// GetReservaState devuelve el state correspondiente al estado de la reserva
func GetReservaState(estado EstadoReserva) ReservaState {
	switch estado {
	case EstadoReservada:
		return ReservadaState{}
	case EstadoConfirmada:
		return ConfirmadaState{}
	case EstadoEfectuada:
		return EfectuadaState{}
	case EstadoFinalizada:
		return FinalizadaState{}
	case EstadoAdeudada:
		return AdeudadaState{}
	case EstadoCancelada:
		return CanceladaState{}
	case EstadoBloqueada:
		return BloqueadaState{}
	case EstadoCerrada:
		return CerradaState{}
	default:
		return baseState{}
	}
}
