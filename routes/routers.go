package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelera/controllers"
	"hotelera/middleware"
	"hotelera/models"
	"hotelera/repository"
	"hotelera/services"
)

// SetupRoutes arma el grafo de dependencias y registra las rutas. Devuelve el
// servicio de reservas para que los jobs usen la misma instancia.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) *services.ReservaService {
	tarifaRepo := repository.NewTarifaRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db, redisCli)
	reservaRepo := repository.NewReservaRepository(db)

	resolver := services.NewTarifaResolver(tarifaRepo)
	disponibilidad := services.NewDisponibilidadService(catalogoRepo, reservaRepo, resolver)
	reservaService := services.NewReservaService(services.ReservaServiceOptions{
		Reservas: reservaRepo,
		Catalogo: catalogoRepo,
		Resolver: resolver,
	})
	authService := services.NewAuthService(db)

	authController := controllers.NewAuthController(db, authService)
	hotelController := controllers.NewHotelController(db, catalogoRepo)
	habitacionController := controllers.NewHabitacionController(db, catalogoRepo)
	tarifaController := controllers.NewTarifaController(db, resolver)
	busquedaController := controllers.NewBusquedaController(disponibilidad)
	reservaController := controllers.NewReservaController(reservaService, reservaRepo)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.GET("/profile", middleware.AuthMiddleware(), authController.GetProfile)
	v1.GET("/bancos", middleware.AuthMiddleware(), authController.GetBancos)
	v1.POST("/bancos", middleware.AuthMiddleware(), authController.AddBanco)
	v1.DELETE("/bancos/:id", middleware.AuthMiddleware(), authController.DeleteBanco)

	v1.GET("/hoteles", hotelController.GetHoteles)
	v1.GET("/hoteles/:id", hotelController.GetHotelDetail)
	v1.POST("/hoteles", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), hotelController.CreateHotel)
	v1.PUT("/hoteles", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), hotelController.UpdateHotel)

	v1.GET("/tiposHabitacion", habitacionController.GetTiposHabitacion)
	v1.POST("/tiposHabitacion", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), habitacionController.CreateTipoHabitacion)
	v1.GET("/habitaciones", habitacionController.GetHabitaciones)
	v1.GET("/habitaciones/:id", habitacionController.GetHabitacionDetail)
	v1.POST("/habitaciones", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), habitacionController.CreateHabitacion)

	v1.GET("/tarifas", tarifaController.GetTarifas)
	v1.GET("/tarifas/resolver", tarifaController.ResolverTarifa)
	v1.POST("/tarifas", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), tarifaController.CreateTarifa)

	v1.GET("/disponibilidad", busquedaController.BuscarDisponibilidad)

	v1.POST("/reservas", middleware.OptionalAuthMiddleware(), reservaController.CreateReserva)
	v1.GET("/reservas", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), reservaController.GetReservas)
	v1.GET("/reservas/:id", reservaController.GetReservaDetail)
	v1.POST("/reservas/:id/pagos", reservaController.RegistrarPago)
	v1.POST("/reservas/:id/checkin", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), reservaController.CheckIn)
	v1.POST("/reservas/:id/checkout", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), reservaController.CheckOut)
	v1.POST("/reservas/:id/cancelar", reservaController.CancelarReserva)
	v1.POST("/reservas/:id/rating", middleware.AuthMiddleware(), reservaController.AgregarRating)

	v1.POST("/habitaciones/bloquear", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), reservaController.BloquearHabitacion)
	v1.POST("/habitaciones/cerrar", middleware.AuthMiddleware(models.RolAdmin, models.RolPropietario), reservaController.CerrarHabitacion)

	return reservaService
}
