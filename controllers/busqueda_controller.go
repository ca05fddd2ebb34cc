package controllers

import (
	"github.com/gin-gonic/gin"

	"hotelera/dto"
	"hotelera/response"
	"hotelera/services"
)

// BusquedaController expone la búsqueda de disponibilidad
type BusquedaController struct {
	disponibilidad *services.DisponibilidadService
}

func NewBusquedaController(disponibilidad *services.DisponibilidadService) *BusquedaController {
	return &BusquedaController{disponibilidad: disponibilidad}
}

// BuscarDisponibilidad filtra habitaciones libres por fechas, capacidad,
// precio, categoría, amenities y distancia. Sin filtros devuelve todo el
// catálogo ofertable.
func (bc *BusquedaController) BuscarDisponibilidad(c *gin.Context) {
	var req dto.BusquedaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Filtros inválidos")
		return
	}

	criterios := services.CriteriosBusqueda{
		CantidadHuespedes:     req.CantidadHuespedes,
		PrecioMinimo:          req.PrecioMinimo,
		PrecioMaximo:          req.PrecioMaximo,
		CategoriaMinima:       req.CategoriaMinima,
		CategoriaMaxima:       req.CategoriaMaxima,
		Amenities:             req.Amenities,
		Latitud:               req.Latitud,
		Longitud:              req.Longitud,
		DistanciaMaximaMetros: req.DistanciaMaximaMetros,
	}

	// Las fechas filtran solapamiento solo si vienen las dos
	if req.CheckIn != "" {
		checkIn, err := parseFecha(req.CheckIn)
		if err != nil {
			response.BadRequest(c, "Fecha de check-in inválida, formato dd/mm/aaaa")
			return
		}
		criterios.CheckIn = &checkIn
	}
	if req.CheckOut != "" {
		checkOut, err := parseFecha(req.CheckOut)
		if err != nil {
			response.BadRequest(c, "Fecha de check-out inválida, formato dd/mm/aaaa")
			return
		}
		criterios.CheckOut = &checkOut
	}
	if criterios.CheckIn != nil && criterios.CheckOut != nil && !criterios.CheckOut.After(*criterios.CheckIn) {
		response.BadRequest(c, "El check-out debe ser posterior al check-in")
		return
	}

	disponibles, err := bc.disponibilidad.Buscar(criterios)
	if err != nil {
		manejarError(c, err)
		return
	}

	resultado := make([]dto.DisponibilidadResponse, 0, len(disponibles))
	for i := range disponibles {
		resultado = append(resultado, dto.DisponibilidadResponse{
			Habitacion:  dto.NuevaHabitacionResponse(&disponibles[i].Habitacion),
			PrecioNoche: disponibles[i].PrecioNoche,
		})
	}

	response.Success(c, resultado)
}
