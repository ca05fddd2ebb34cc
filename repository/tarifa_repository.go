package repository

import (
	"time"

	"gorm.io/gorm"

	"hotelera/models"
)

// TarifaRepository implementa services.TarifaStore sobre gorm
type TarifaRepository struct {
	db *gorm.DB
}

func NewTarifaRepository(db *gorm.DB) *TarifaRepository {
	return &TarifaRepository{db: db}
}

// VigentesPorTipoYFecha devuelve las tarifas del tipo cuya ventana inclusiva
// contiene la fecha
func (r *TarifaRepository) VigentesPorTipoYFecha(tipoHabitacionID uint, fecha time.Time) ([]models.Tarifa, error) {
	var tarifas []models.Tarifa
	err := r.db.
		Where("tipo_habitacion_id = ? AND fecha_inicio <= ? AND fecha_fin >= ?", tipoHabitacionID, fecha, fecha).
		Order("id ASC").
		Find(&tarifas).Error
	if err != nil {
		return nil, err
	}
	return tarifas, nil
}
