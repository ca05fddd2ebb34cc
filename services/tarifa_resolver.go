package services

import (
	"sort"
	"time"

	"hotelera/errors"
	"hotelera/models"
)

// TarifaResolver resuelve la tarifa vigente de un tipo de habitación para una
// fecha dada. El modelo de datos permite ventanas solapadas, así que el
// desempate es explícito y determinístico:
//  1. gana la tarifa con FechaInicio más reciente
//  2. a igual FechaInicio, gana la de menor ID
type TarifaResolver struct {
	tarifas TarifaStore
}

func NewTarifaResolver(tarifas TarifaStore) *TarifaResolver {
	return &TarifaResolver{tarifas: tarifas}
}

// Resolver devuelve la tarifa vigente para el tipo y la fecha, o ErrSinTarifa
// si ninguna ventana contiene la fecha. Los callers nunca deben interpretar
// la ausencia de tarifa como precio cero.
func (tr *TarifaResolver) Resolver(tipoHabitacionID uint, fecha time.Time) (*models.Tarifa, error) {
	candidatas, err := tr.tarifas.VigentesPorTipoYFecha(tipoHabitacionID, fecha)
	if err != nil {
		return nil, err
	}

	// El store puede devolver de más; se filtra por ventana inclusiva acá
	vigentes := candidatas[:0:0]
	for _, t := range candidatas {
		if t.Vigente(fecha) {
			vigentes = append(vigentes, t)
		}
	}

	if len(vigentes) == 0 {
		return nil, errors.ErrSinTarifa
	}

	sort.Slice(vigentes, func(i, j int) bool {
		if !vigentes[i].FechaInicio.Equal(vigentes[j].FechaInicio) {
			return vigentes[i].FechaInicio.After(vigentes[j].FechaInicio)
		}
		return vigentes[i].ID < vigentes[j].ID
	})

	elegida := vigentes[0]
	return &elegida, nil
}
