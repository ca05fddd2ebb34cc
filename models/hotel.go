package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Hotel struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Nombre         string         `json:"nombre"`
	CUIT           string         `json:"cuit"` // Identificador fiscal, string opaco
	Domicilio      string         `json:"domicilio"`
	Telefono       string         `json:"telefono"`
	CorreoContacto string         `json:"correoContacto"`
	Categoria      int            `json:"categoria"` // Estrellas, 1 a 5
	Latitud        *float64       `json:"latitud,omitempty"`
	Longitud       *float64       `json:"longitud,omitempty"`
	Amenities      pq.StringArray `json:"amenities" gorm:"type:text[]"`
	PropietarioID  *uint          `json:"propietarioId,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Habitaciones   []Habitacion   `json:"habitaciones,omitempty" gorm:"foreignKey:HotelID"`
}

// ValidarCategoria verifica que la categoría esté entre 1 y 5 estrellas
func (h *Hotel) ValidarCategoria() error {
	if h.Categoria < 1 || h.Categoria > 5 {
		return fmt.Errorf("categoría inválida: %d, debe estar entre 1 y 5", h.Categoria)
	}
	return nil
}

// TieneAmenities indica si el hotel posee todos los amenities solicitados
func (h *Hotel) TieneAmenities(requeridos []string) bool {
	for _, req := range requeridos {
		encontrado := false
		for _, a := range h.Amenities {
			if a == req {
				encontrado = true
				break
			}
		}
		if !encontrado {
			return false
		}
	}
	return true
}

type TipoHabitacion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Capacidad   int       `json:"capacidad"` // Cantidad nominal de huéspedes
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Habitacion struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	HotelID          uint           `json:"hotelId" gorm:"index"`
	TipoHabitacionID uint           `json:"tipoHabitacionId" gorm:"index"`
	Numero           string         `json:"numero"`
	Piso             int            `json:"piso"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel            Hotel          `json:"hotel" gorm:"foreignKey:HotelID"`
	TipoHabitacion   TipoHabitacion `json:"tipoHabitacion" gorm:"foreignKey:TipoHabitacionID"`
}
