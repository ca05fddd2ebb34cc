package controllers

import (
	stderrors "errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelera/dto"
	"hotelera/errors"
	"hotelera/response"
	"hotelera/utils"
)

// manejarError traduce los errores de negocio al código HTTP que corresponde.
// Todo lo que no es un error conocido termina en 500 sin filtrar detalles.
func manejarError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrNoEncontrado):
		response.NotFound(c)
	case stderrors.Is(err, errors.ErrConflicto):
		response.Conflict(c, err.Error())
	case stderrors.Is(err, errors.ErrTransicionInvalida):
		response.UnprocessableEntity(c, err.Error())
	case stderrors.Is(err, errors.ErrSinTarifa):
		response.UnprocessableEntity(c, err.Error())
	case stderrors.Is(err, errors.ErrReviewYaExiste):
		response.Conflict(c, err.Error())
	case stderrors.Is(err, errors.ErrUsuarioExiste):
		response.Conflict(c, err.Error())
	case stderrors.Is(err, errors.ErrPasswordInvalido), stderrors.Is(err, errors.ErrNoAutorizado):
		response.Unauthorized(c)
	default:
		if appErr := errors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		utils.LogError("Error no manejado: %v", err)
		response.ServerError(c)
	}
}

// parseID lee el parámetro :id de la ruta
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

// parseFecha interpreta una fecha dd/mm/aaaa de un request
func parseFecha(valor string) (time.Time, error) {
	return time.Parse(dto.FormatoFecha, valor)
}
