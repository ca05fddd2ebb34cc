package dto

import "hotelera/models"

// RegisterRequest es el DTO para el registro de un huésped
type RegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Telefono string `json:"telefono"`
}

// LoginRequest es el DTO para el login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse devuelve el token junto con el perfil del huésped
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	Huesped     HuespedResponse `json:"huesped"`
}

// HuespedResponse es el perfil público de un huésped
type HuespedResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Rol      int    `json:"rol"`
}

// BancoRequest es el DTO para asociar una cuenta bancaria
type BancoRequest struct {
	Nombre string `json:"nombre" binding:"required"`
	CBU    string `json:"cbu" binding:"required"`
}

// NuevoHuespedResponse arma el perfil público desde el modelo
func NuevoHuespedResponse(h *models.Huesped) HuespedResponse {
	return HuespedResponse{
		ID:       h.ID,
		Nombre:   h.Nombre,
		Apellido: h.Apellido,
		Email:    h.Email,
		Telefono: h.Telefono,
		Rol:      h.Rol,
	}
}
