package dto

import "hotelera/models"

// CrearHotelRequest es el DTO para el alta de un hotel
type CrearHotelRequest struct {
	Nombre         string   `json:"nombre" binding:"required"`
	CUIT           string   `json:"cuit" binding:"required"`
	Domicilio      string   `json:"domicilio"`
	Telefono       string   `json:"telefono"`
	CorreoContacto string   `json:"correoContacto"`
	Categoria      int      `json:"categoria" binding:"required"`
	Latitud        *float64 `json:"latitud"`
	Longitud       *float64 `json:"longitud"`
	Amenities      []string `json:"amenities"`
}

// ActualizarHotelRequest es el DTO para la actualización de un hotel
type ActualizarHotelRequest struct {
	ID             uint     `json:"id" binding:"required"`
	Nombre         string   `json:"nombre"`
	CUIT           string   `json:"cuit"`
	Domicilio      string   `json:"domicilio"`
	Telefono       string   `json:"telefono"`
	CorreoContacto string   `json:"correoContacto"`
	Categoria      int      `json:"categoria"`
	Latitud        *float64 `json:"latitud"`
	Longitud       *float64 `json:"longitud"`
	Amenities      []string `json:"amenities"`
}

// CrearTipoHabitacionRequest es el DTO para el alta de un tipo de habitación
type CrearTipoHabitacionRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
	Capacidad   int    `json:"capacidad" binding:"required"`
}

// CrearHabitacionRequest es el DTO para el alta de una habitación
type CrearHabitacionRequest struct {
	HotelID          uint   `json:"hotelId" binding:"required"`
	TipoHabitacionID uint   `json:"tipoHabitacionId" binding:"required"`
	Numero           string `json:"numero" binding:"required"`
	Piso             int    `json:"piso"`
}

// CrearTarifaRequest es el DTO para el alta de una tarifa con su ventana de
// vigencia, en formato dd/mm/aaaa
type CrearTarifaRequest struct {
	TipoHabitacionID uint    `json:"tipoHabitacionId" binding:"required"`
	PrecioNoche      float64 `json:"precioNoche" binding:"required"`
	FechaInicio      string  `json:"fechaInicio" binding:"required"`
	FechaFin         string  `json:"fechaFin" binding:"required"`
}

// HabitacionResponse es el DTO de habitación con su hotel y tipo
type HabitacionResponse struct {
	ID             uint                  `json:"id"`
	Numero         string                `json:"numero"`
	Piso           int                   `json:"piso"`
	Hotel          HotelResumen          `json:"hotel"`
	TipoHabitacion TipoHabitacionResumen `json:"tipoHabitacion"`
}

type HotelResumen struct {
	ID        uint     `json:"id"`
	Nombre    string   `json:"nombre"`
	Domicilio string   `json:"domicilio"`
	Categoria int      `json:"categoria"`
	Latitud   *float64 `json:"latitud,omitempty"`
	Longitud  *float64 `json:"longitud,omitempty"`
	Amenities []string `json:"amenities"`
}

type TipoHabitacionResumen struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Capacidad int    `json:"capacidad"`
}

// NuevaHabitacionResponse arma el DTO desde el modelo con sus asociaciones
func NuevaHabitacionResponse(h *models.Habitacion) HabitacionResponse {
	return HabitacionResponse{
		ID:     h.ID,
		Numero: h.Numero,
		Piso:   h.Piso,
		Hotel: HotelResumen{
			ID:        h.Hotel.ID,
			Nombre:    h.Hotel.Nombre,
			Domicilio: h.Hotel.Domicilio,
			Categoria: h.Hotel.Categoria,
			Latitud:   h.Hotel.Latitud,
			Longitud:  h.Hotel.Longitud,
			Amenities: h.Hotel.Amenities,
		},
		TipoHabitacion: TipoHabitacionResumen{
			ID:        h.TipoHabitacion.ID,
			Nombre:    h.TipoHabitacion.Nombre,
			Capacidad: h.TipoHabitacion.Capacidad,
		},
	}
}
