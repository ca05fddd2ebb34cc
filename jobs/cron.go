package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ReservaVencidaCancelador cancela las reservas sin pago con check-in pasado
type ReservaVencidaCancelador interface {
	CancelarVencidas(ahora time.Time) (int, error)
}

var cancelador ReservaVencidaCancelador

// SetReservaVencidaCancelador fija la implementación usada por el job
func SetReservaVencidaCancelador(c ReservaVencidaCancelador) {
	cancelador = c
}

// InitCronJobs registra los jobs periódicos y arranca el scheduler
func InitCronJobs(c *cron.Cron) error {
	// A medianoche se cancelan las reservas RESERVADA con check-in vencido
	_, err := c.AddFunc("0 0 * * *", func() {
		if cancelador == nil {
			log.Println("Job de reservas vencidas sin cancelador configurado")
			return
		}
		canceladas, err := cancelador.CancelarVencidas(time.Now())
		if err != nil {
			log.Printf("Error cancelando reservas vencidas: %v", err)
			return
		}
		log.Printf("Job de reservas vencidas: %d canceladas", canceladas)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs inicializados correctamente")
	return nil
}
