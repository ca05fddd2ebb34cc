package dto

// BusquedaRequest son los filtros de la búsqueda de disponibilidad. Todos son
// opcionales; los campos vacíos no filtran. Fechas en dd/mm/aaaa.
type BusquedaRequest struct {
	CheckIn               string   `form:"checkIn" json:"checkIn"`
	CheckOut              string   `form:"checkOut" json:"checkOut"`
	CantidadHuespedes     *int     `form:"huespedes" json:"huespedes"`
	PrecioMinimo          *float64 `form:"precioMin" json:"precioMin"`
	PrecioMaximo          *float64 `form:"precioMax" json:"precioMax"`
	CategoriaMinima       *int     `form:"categoriaMin" json:"categoriaMin"`
	CategoriaMaxima       *int     `form:"categoriaMax" json:"categoriaMax"`
	Amenities             []string `form:"amenities" json:"amenities"`
	Latitud               *float64 `form:"latitud" json:"latitud"`
	Longitud              *float64 `form:"longitud" json:"longitud"`
	DistanciaMaximaMetros *float64 `form:"distanciaMax" json:"distanciaMax"`
}

// DisponibilidadResponse es un resultado de búsqueda con la tarifa resuelta
type DisponibilidadResponse struct {
	Habitacion  HabitacionResponse `json:"habitacion"`
	PrecioNoche float64            `json:"precioNoche"`
}
