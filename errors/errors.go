package errors

import (
	"errors"
	"fmt"
)

// ErrorCode define el código de error
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidCBU    ErrorCode = "INVALID_CBU"

	// Business errors
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeInvalidTransition ErrorCode = "INVALID_STATE_TRANSITION"
	ErrCodeConflict          ErrorCode = "CONFLICT"
	ErrCodeNoRate            ErrorCode = "NO_RATE_AVAILABLE"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// AppError define el error de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError crea un AppError nuevo
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError extrae el AppError de un error, o nil si no lo es
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Errores de negocio: resultados recuperables y distinguibles para el caller.
// Ninguno se reintenta automáticamente.
var (
	ErrNoEncontrado       = errors.New("recurso no encontrado")
	ErrTransicionInvalida = errors.New("transición de estado inválida")
	ErrConflicto          = errors.New("conflicto de reservas para la habitación y el rango de fechas")
	ErrSinTarifa          = errors.New("no hay tarifa vigente para el tipo de habitación y la fecha")
	ErrValidacion         = errors.New("datos de entrada inválidos")

	// Auth
	ErrUsuarioExiste      = errors.New("el usuario ya existe")
	ErrPasswordInvalido   = errors.New("password inválido")
	ErrNoAutorizado       = errors.New("no autorizado")

	// Reviews
	ErrReviewYaExiste = errors.New("la reserva ya tiene una review de ese tipo")
)
