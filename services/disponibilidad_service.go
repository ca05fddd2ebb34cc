package services

import (
	"errors"
	"sort"
	"time"

	apperrors "hotelera/errors"
	"hotelera/models"
)

// CriteriosBusqueda son los filtros de disponibilidad. Todos opcionales y
// combinados por AND.
type CriteriosBusqueda struct {
	CheckIn               *time.Time
	CheckOut              *time.Time
	CantidadHuespedes     *int
	PrecioMinimo          *float64
	PrecioMaximo          *float64
	CategoriaMinima       *int
	CategoriaMaxima       *int
	Amenities             []string
	Latitud               *float64
	Longitud              *float64
	DistanciaMaximaMetros *float64
}

// HabitacionDisponible es una habitación elegible junto con su tarifa resuelta
type HabitacionDisponible struct {
	Habitacion  models.Habitacion
	PrecioNoche float64
}

// DisponibilidadService arma los resultados de búsqueda consultando el
// catálogo, el resolver de tarifas y las reservas existentes. Es de solo
// lectura; un resultado puede quedar viejo para cuando el cliente actúe, por
// eso la creación de reservas revalida el solapamiento al confirmar.
type DisponibilidadService struct {
	catalogo CatalogoStore
	reservas ReservaStore
	resolver *TarifaResolver
}

func NewDisponibilidadService(catalogo CatalogoStore, reservas ReservaStore, resolver *TarifaResolver) *DisponibilidadService {
	return &DisponibilidadService{
		catalogo: catalogo,
		reservas: reservas,
		resolver: resolver,
	}
}

// Buscar devuelve las habitaciones libres que cumplen todos los criterios.
// Sin coincidencias devuelve lista vacía, nunca error. El orden es estable
// por ID de habitación para que llamadas idénticas den resultados idénticos.
func (s *DisponibilidadService) Buscar(criterios CriteriosBusqueda) ([]HabitacionDisponible, error) {
	habitaciones, err := s.catalogo.Habitaciones()
	if err != nil {
		return nil, err
	}

	// La tarifa se evalúa para la fecha de check-in, u "hoy" si no hay fechas
	fechaTarifa := time.Now()
	if criterios.CheckIn != nil {
		fechaTarifa = *criterios.CheckIn
	}

	resultado := make([]HabitacionDisponible, 0)

	for _, hab := range habitaciones {
		if criterios.CantidadHuespedes != nil && hab.TipoHabitacion.Capacidad < *criterios.CantidadHuespedes {
			continue
		}

		if criterios.CategoriaMinima != nil && hab.Hotel.Categoria < *criterios.CategoriaMinima {
			continue
		}
		if criterios.CategoriaMaxima != nil && hab.Hotel.Categoria > *criterios.CategoriaMaxima {
			continue
		}

		if len(criterios.Amenities) > 0 && !hab.Hotel.TieneAmenities(criterios.Amenities) {
			continue
		}

		if criterios.Latitud != nil && criterios.Longitud != nil && criterios.DistanciaMaximaMetros != nil {
			if hab.Hotel.Latitud == nil || hab.Hotel.Longitud == nil {
				continue
			}
			distancia := Haversine(*criterios.Latitud, *criterios.Longitud, *hab.Hotel.Latitud, *hab.Hotel.Longitud)
			if distancia > *criterios.DistanciaMaximaMetros {
				continue
			}
		}

		tarifa, err := s.resolver.Resolver(hab.TipoHabitacionID, fechaTarifa)
		if err != nil {
			if errors.Is(err, apperrors.ErrSinTarifa) {
				// Sin tarifa vigente la habitación no es ofertable
				continue
			}
			return nil, err
		}

		if criterios.PrecioMinimo != nil && tarifa.PrecioNoche < *criterios.PrecioMinimo {
			continue
		}
		if criterios.PrecioMaximo != nil && tarifa.PrecioNoche > *criterios.PrecioMaximo {
			continue
		}

		if criterios.CheckIn != nil && criterios.CheckOut != nil {
			solapadas, err := s.reservas.SolapadasPorHabitacion(
				hab.ID, *criterios.CheckIn, *criterios.CheckOut, models.EstadosBloqueantes())
			if err != nil {
				return nil, err
			}
			if len(solapadas) > 0 {
				continue
			}
		}

		resultado = append(resultado, HabitacionDisponible{
			Habitacion:  hab,
			PrecioNoche: tarifa.PrecioNoche,
		})
	}

	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].Habitacion.ID < resultado[j].Habitacion.ID
	})

	return resultado, nil
}
