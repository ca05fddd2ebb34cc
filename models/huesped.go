package models

import "time"

// Roles de usuario
const (
	RolHuesped     = 0
	RolAdmin       = 1
	RolPropietario = 2
)

type Huesped struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Email     string    `gorm:"unique" json:"email"`
	Password  string    `json:"-"`
	Telefono  string    `json:"telefono"`
	Rol       int       `gorm:"default:0" json:"rol"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Bancos    []Banco   `json:"bancos,omitempty" gorm:"foreignKey:HuespedID"`
}

// Banco es una cuenta bancaria asociada a un usuario. El CBU es un string
// opaco para el sistema; solo se valida el formato.
type Banco struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HuespedID uint      `json:"huespedId" gorm:"index"`
	Nombre    string    `json:"nombre"`
	CBU       string    `json:"cbu"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
