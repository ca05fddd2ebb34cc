package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelera/config"
	"hotelera/jobs"
	"hotelera/models"
	"hotelera/routes"
)

func migrate() {
	if err := config.DB.AutoMigrate(
		&models.Hotel{},
		&models.TipoHabitacion{},
		&models.Habitacion{},
		&models.Tarifa{},
		&models.Reserva{},
		&models.Pago{},
		&models.Review{},
		&models.Huesped{},
		&models.Banco{},
	); err != nil {
		log.Fatalf("Error migrando tablas: %v", err)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no se pudo cargar .env, se usan las variables de entorno: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Error inicializando la aplicación: %v", err)
	}

	migrate()

	reservaService := routes.SetupRoutes(router, config.DB, config.RedisClient)

	jobs.SetReservaVencidaCancelador(reservaService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Error inicializando cron jobs: %v", err)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := config.GetEnvDefault("PORT", "8083")

	log.Println("Servidor escuchando en el puerto " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error arrancando el servidor: %v", err)
	}
}
