package models

import "time"

// Tarifa define el precio por noche de un tipo de habitación dentro de una
// ventana de vigencia [FechaInicio, FechaFin] con extremos inclusivos.
// Las ventanas de un mismo tipo pueden solaparse; la resolución determinística
// vive en services.TarifaResolver.
type Tarifa struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	TipoHabitacionID uint      `json:"tipoHabitacionId" gorm:"index"`
	PrecioNoche      float64   `json:"precioNoche"`
	FechaInicio      time.Time `json:"fechaInicio" gorm:"index"`
	FechaFin         time.Time `json:"fechaFin" gorm:"index"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Vigente indica si la fecha cae dentro de la ventana de validez
func (t *Tarifa) Vigente(fecha time.Time) bool {
	return !fecha.Before(t.FechaInicio) && !fecha.After(t.FechaFin)
}
