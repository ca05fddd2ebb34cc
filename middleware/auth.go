package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hotelera/response"
	"hotelera/services"
)

// AuthMiddleware valida el token Bearer y, si se pasan roles, exige que el
// usuario tenga alguno de ellos
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, rol, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			tieneRol := false
			for _, r := range roles {
				if r == rol {
					tieneRol = true
					break
				}
			}
			if !tieneRol {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("userRol", rol)
		c.Next()
	}
}

// OptionalAuthMiddleware intenta resolver el usuario del token pero deja
// pasar requests anónimos. Lo usa la creación de reservas, que acepta tanto
// huéspedes registrados como datos de contacto sueltos.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if userID, rol, err := services.GetUserIDFromToken(tokenString); err == nil {
			c.Set("userID", userID)
			c.Set("userRol", rol)
		}
		c.Next()
	}
}
