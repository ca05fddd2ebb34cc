package services

import (
	stderrors "errors"
	"testing"
	"time"

	"hotelera/errors"
	"hotelera/models"
)

func TestResolverSinTarifaVigente(t *testing.T) {
	store := &fakeTarifaStore{tarifas: []models.Tarifa{
		{ID: 1, TipoHabitacionID: 1, PrecioNoche: 10000, FechaInicio: fecha(2025, time.January, 1), FechaFin: fecha(2025, time.March, 31)},
	}}
	resolver := NewTarifaResolver(store)

	_, err := resolver.Resolver(1, fecha(2025, time.June, 1))
	if !stderrors.Is(err, errors.ErrSinTarifa) {
		t.Fatalf("se esperaba ErrSinTarifa, se obtuvo %v", err)
	}
}

func TestResolverVentanaInclusiva(t *testing.T) {
	store := &fakeTarifaStore{tarifas: []models.Tarifa{
		{ID: 1, TipoHabitacionID: 1, PrecioNoche: 10000, FechaInicio: fecha(2025, time.January, 1), FechaFin: fecha(2025, time.December, 31)},
	}}
	resolver := NewTarifaResolver(store)

	// Los dos extremos de la ventana son válidos
	for _, dia := range []time.Time{fecha(2025, time.January, 1), fecha(2025, time.December, 31)} {
		tarifa, err := resolver.Resolver(1, dia)
		if err != nil {
			t.Fatalf("error inesperado para %v: %v", dia, err)
		}
		if tarifa.PrecioNoche != 10000 {
			t.Errorf("precio = %v, se esperaba 10000", tarifa.PrecioNoche)
		}
	}

	// Fuera de la ventana no hay tarifa
	if _, err := resolver.Resolver(1, fecha(2026, time.January, 1)); !stderrors.Is(err, errors.ErrSinTarifa) {
		t.Errorf("se esperaba ErrSinTarifa fuera de la ventana, se obtuvo %v", err)
	}
}

func TestResolverDesempatePorFechaInicio(t *testing.T) {
	// Dos ventanas solapadas: gana la que empezó más tarde
	store := &fakeTarifaStore{tarifas: []models.Tarifa{
		{ID: 1, TipoHabitacionID: 1, PrecioNoche: 10000, FechaInicio: fecha(2025, time.January, 1), FechaFin: fecha(2025, time.December, 31)},
		{ID: 2, TipoHabitacionID: 1, PrecioNoche: 15000, FechaInicio: fecha(2025, time.June, 1), FechaFin: fecha(2025, time.August, 31)},
	}}
	resolver := NewTarifaResolver(store)

	tarifa, err := resolver.Resolver(1, fecha(2025, time.July, 10))
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if tarifa.ID != 2 {
		t.Errorf("tarifa elegida = %d, se esperaba 2 (FechaInicio más reciente)", tarifa.ID)
	}

	// Fuera de la ventana de temporada vuelve la tarifa base
	tarifa, err = resolver.Resolver(1, fecha(2025, time.March, 1))
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if tarifa.ID != 1 {
		t.Errorf("tarifa elegida = %d, se esperaba 1", tarifa.ID)
	}
}

func TestResolverDesempatePorID(t *testing.T) {
	// Misma FechaInicio: gana el menor ID, sin importar el orden del store
	store := &fakeTarifaStore{tarifas: []models.Tarifa{
		{ID: 7, TipoHabitacionID: 1, PrecioNoche: 20000, FechaInicio: fecha(2025, time.June, 1), FechaFin: fecha(2025, time.August, 31)},
		{ID: 3, TipoHabitacionID: 1, PrecioNoche: 18000, FechaInicio: fecha(2025, time.June, 1), FechaFin: fecha(2025, time.August, 31)},
	}}
	resolver := NewTarifaResolver(store)

	tarifa, err := resolver.Resolver(1, fecha(2025, time.July, 1))
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if tarifa.ID != 3 {
		t.Errorf("tarifa elegida = %d, se esperaba 3 (menor ID)", tarifa.ID)
	}
}

func TestResolverIgnoraOtroTipo(t *testing.T) {
	store := &fakeTarifaStore{tarifas: []models.Tarifa{
		{ID: 1, TipoHabitacionID: 2, PrecioNoche: 9000, FechaInicio: fecha(2025, time.January, 1), FechaFin: fecha(2025, time.December, 31)},
	}}
	resolver := NewTarifaResolver(store)

	if _, err := resolver.Resolver(1, fecha(2025, time.June, 1)); !stderrors.Is(err, errors.ErrSinTarifa) {
		t.Errorf("se esperaba ErrSinTarifa para otro tipo, se obtuvo %v", err)
	}
}
