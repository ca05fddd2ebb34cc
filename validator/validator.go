package validator

import (
	"math"
	"regexp"
	"time"

	"hotelera/errors"
	"hotelera/models"
)

// ValidarHuesped valida los datos de un usuario
func ValidarHuesped(h *models.Huesped) error {
	if h.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El email no puede estar vacío", nil)
	}

	if !esEmailValido(h.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "El email no es válido", nil)
	}

	if h.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El password no puede estar vacío", nil)
	}

	if len(h.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "El password debe tener al menos 6 caracteres", nil)
	}

	if h.Rol < models.RolHuesped || h.Rol > models.RolPropietario {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Rol no válido", nil)
	}

	return nil
}

// ValidarBanco valida una cuenta bancaria
func ValidarBanco(b *models.Banco) error {
	if b.Nombre == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El nombre del banco no puede estar vacío", nil)
	}

	if !esCBUValido(b.CBU) {
		return errors.NewAppError(errors.ErrCodeInvalidCBU, "El CBU no es válido: "+b.CBU, nil)
	}

	return nil
}

// ValidarHotel valida los datos de un hotel
func ValidarHotel(h *models.Hotel) error {
	if h.Nombre == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El nombre del hotel no puede estar vacío", nil)
	}

	if err := h.ValidarCategoria(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if h.CUIT != "" && !esCUITValido(h.CUIT) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "El CUIT no es válido: "+h.CUIT, nil)
	}

	if h.CorreoContacto != "" && !esEmailValido(h.CorreoContacto) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "El correo de contacto no es válido", nil)
	}

	if (h.Latitud == nil) != (h.Longitud == nil) {
		return errors.NewAppError(errors.ErrCodeValidation, "Latitud y longitud deben informarse juntas", nil)
	}

	return nil
}

// ValidarTipoHabitacion valida un tipo de habitación
func ValidarTipoHabitacion(t *models.TipoHabitacion) error {
	if t.Nombre == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El nombre del tipo no puede estar vacío", nil)
	}

	if t.Capacidad < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "La capacidad debe ser al menos 1", nil)
	}

	return nil
}

// ValidarTarifa valida la ventana de vigencia y el precio de una tarifa
func ValidarTarifa(t *models.Tarifa) error {
	if t.TipoHabitacionID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El tipo de habitación no puede estar vacío", nil)
	}

	if t.PrecioNoche <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "El precio por noche debe ser positivo", nil)
	}

	if t.FechaFin.Before(t.FechaInicio) {
		return errors.NewAppError(errors.ErrCodeValidation, "La fecha de fin debe ser posterior o igual a la de inicio", nil)
	}

	return nil
}

// ValidarFechasReserva valida el rango de estadía
func ValidarFechasReserva(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Las fechas de check-in y check-out son obligatorias", nil)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation, "El check-out debe ser posterior al check-in", nil)
	}

	return nil
}

// ValidarReserva valida los datos de creación de una reserva con huésped
func ValidarReserva(r *models.Reserva) error {
	if r.HabitacionID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "La habitación no puede estar vacía", nil)
	}

	if err := ValidarFechasReserva(r.CheckIn, r.CheckOut); err != nil {
		return err
	}

	// Sin huésped registrado los datos de contacto son obligatorios
	if r.HuespedID == nil {
		if r.NombreHuesped == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "El nombre del huésped no puede estar vacío", nil)
		}
		if r.EmailHuesped == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "El email del huésped no puede estar vacío", nil)
		}
	}

	if r.EmailHuesped != "" && !esEmailValido(r.EmailHuesped) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "El email del huésped no es válido", nil)
	}

	return nil
}

// ValidarPago valida un pago a registrar
func ValidarPago(p *models.Pago) error {
	if p.Monto <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "El monto del pago debe ser positivo", nil)
	}

	if p.Metodo == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El método de pago no puede estar vacío", nil)
	}

	switch p.Estado {
	case models.PagoAprobado, models.PagoPendiente, models.PagoRechazado:
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Estado de pago no válido: "+p.Estado, nil)
	}

	return nil
}

// ValidarRating valida un rating de review: 1 a 5 con medios puntos
func ValidarRating(rating float64) error {
	if rating < 1 || rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "El rating debe estar entre 1 y 5", nil)
	}

	if math.Mod(rating*2, 1) != 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "El rating solo admite medios puntos", nil)
	}

	return nil
}

// esEmailValido verifica el formato del email
func esEmailValido(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// esCBUValido verifica el formato del CBU (22 dígitos)
func esCBUValido(cbu string) bool {
	cbuRegex := regexp.MustCompile(`^[0-9]{22}$`)
	return cbuRegex.MatchString(cbu)
}

// esCUITValido verifica el formato del CUIT (NN-NNNNNNNN-N o 11 dígitos)
func esCUITValido(cuit string) bool {
	cuitRegex := regexp.MustCompile(`^[0-9]{2}-?[0-9]{8}-?[0-9]$`)
	return cuitRegex.MatchString(cuit)
}
