package repository

import (
	stderrors "errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelera/config"
	"hotelera/errors"
	"hotelera/models"
	"hotelera/services"
)

const (
	cacheKeyHabitaciones = "catalogo:habitaciones"
	cacheTTLCatalogo     = 10 * time.Minute
)

// CatalogoRepository implementa services.CatalogoStore sobre gorm, con un
// cache read-through en Redis para el listado completo que consume la
// búsqueda de disponibilidad
type CatalogoRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCatalogoRepository(db *gorm.DB, rdb *redis.Client) *CatalogoRepository {
	return &CatalogoRepository{db: db, rdb: rdb}
}

// Habitaciones devuelve el catálogo completo con hotel y tipo precargados
func (r *CatalogoRepository) Habitaciones() ([]models.Habitacion, error) {
	var habitaciones []models.Habitacion

	if r.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, r.rdb, cacheKeyHabitaciones, &habitaciones); err == nil && len(habitaciones) > 0 {
			return habitaciones, nil
		}
	}

	err := r.db.
		Preload("Hotel").
		Preload("TipoHabitacion").
		Order("id ASC").
		Find(&habitaciones).Error
	if err != nil {
		return nil, err
	}

	if r.rdb != nil {
		if err := services.SetToRedis(config.Ctx, r.rdb, cacheKeyHabitaciones, habitaciones, cacheTTLCatalogo); err != nil {
			log.Printf("No se pudo cachear el catálogo de habitaciones: %v", err)
		}
	}

	return habitaciones, nil
}

// HabitacionPorID busca una habitación con sus asociaciones
func (r *CatalogoRepository) HabitacionPorID(id uint) (*models.Habitacion, error) {
	var habitacion models.Habitacion
	err := r.db.
		Preload("Hotel").
		Preload("TipoHabitacion").
		First(&habitacion, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNoEncontrado
		}
		return nil, err
	}
	return &habitacion, nil
}

// InvalidarCache borra el listado cacheado; se llama en cada mutación del
// catálogo y de las tarifas
func (r *CatalogoRepository) InvalidarCache() {
	if r.rdb == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, r.rdb, cacheKeyHabitaciones); err != nil {
		log.Printf("No se pudo invalidar el cache del catálogo: %v", err)
	}
}
