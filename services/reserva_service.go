package services

import (
	"time"

	"github.com/google/uuid"

	"hotelera/errors"
	"hotelera/models"
	"hotelera/services/logger"
	"hotelera/validator"
)

// CrearReservaParams son los datos de creación de una reserva con huésped
type CrearReservaParams struct {
	HabitacionID  uint
	CheckIn       time.Time
	CheckOut      time.Time
	HuespedID     *uint
	NombreHuesped string
	EmailHuesped  string
}

// ReviewParams son los datos de una review a escribir
type ReviewParams struct {
	Rating     float64
	Comentario string
}

// ReservaServiceOptions son las opciones de construcción del servicio
type ReservaServiceOptions struct {
	Reservas ReservaStore
	Catalogo CatalogoStore
	Resolver *TarifaResolver
	Logger   logger.Logger
}

// ReservaService es el dueño del ciclo de vida de la reserva: aplica el grafo
// de transiciones, los efectos (pagos, reviews, bloqueos) y los totales
// derivados. Las operaciones sobre una misma reserva se serializan con un
// compare-and-swap sobre la versión; el perdedor de una carrera recibe
// ErrTransicionInvalida, nunca un éxito silencioso.
type ReservaService struct {
	reservas ReservaStore
	catalogo CatalogoStore
	resolver *TarifaResolver
	logger   logger.Logger
}

func NewReservaService(opts ReservaServiceOptions) *ReservaService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReservaService{
		reservas: opts.Reservas,
		catalogo: opts.Catalogo,
		resolver: opts.Resolver,
		logger:   l,
	}
}

// CrearReserva crea una reserva en estado RESERVADA. Resuelve la tarifa para
// la fecha de check-in y congela precioNoche y precioTotal; las tarifas
// posteriores nunca recalculan una reserva existente. El solapamiento se
// revalida dentro de la transacción de inserción porque el resultado de una
// búsqueda previa puede estar viejo.
func (s *ReservaService) CrearReserva(params CrearReservaParams) (*models.Reserva, error) {
	reserva := &models.Reserva{
		HabitacionID:  params.HabitacionID,
		CheckIn:       params.CheckIn,
		CheckOut:      params.CheckOut,
		HuespedID:     params.HuespedID,
		NombreHuesped: params.NombreHuesped,
		EmailHuesped:  params.EmailHuesped,
		Estado:        models.EstadoReservada,
		Version:       1,
	}

	if err := validator.ValidarReserva(reserva); err != nil {
		return nil, err
	}

	habitacion, err := s.catalogo.HabitacionPorID(params.HabitacionID)
	if err != nil {
		return nil, err
	}
	reserva.HotelID = habitacion.HotelID

	tarifa, err := s.resolver.Resolver(habitacion.TipoHabitacionID, params.CheckIn)
	if err != nil {
		// Sin tarifa la habitación no tiene precio: se rechaza, jamás se
		// asume precio cero
		return nil, err
	}

	noches := models.CalcularNoches(params.CheckIn, params.CheckOut)
	reserva.PrecioNoche = tarifa.PrecioNoche
	reserva.PrecioTotal = float64(noches) * tarifa.PrecioNoche

	if err := s.reservas.CrearConChequeo(reserva, models.EstadosBloqueantes()); err != nil {
		return nil, err
	}

	s.logger.Info("Reserva %d creada en estado RESERVADA, habitación %d, total %.2f",
		reserva.ID, reserva.HabitacionID, reserva.PrecioTotal)
	return reserva, nil
}

// RegistrarPago agrega un pago al libro de la reserva y luego evalúa si el
// acumulado aprobado alcanza el precio total para pasar de RESERVADA a
// CONFIRMADA. Un pago parcial deja la reserva en RESERVADA. También se
// aceptan pagos en CONFIRMADA, EFECTUADA y ADEUDADA sin cambio de estado.
func (s *ReservaService) RegistrarPago(reservaID uint, pago models.Pago) (*models.Reserva, error) {
	if err := validator.ValidarPago(&pago); err != nil {
		return nil, err
	}

	reserva, err := s.reservas.PorID(reservaID)
	if err != nil {
		return nil, err
	}

	estado := models.GetReservaState(reserva.Estado)
	if !estado.PuedeRegistrarPago() {
		return nil, errors.ErrTransicionInvalida
	}

	pago.ReservaID = reserva.ID
	if pago.TransaccionID == "" {
		pago.TransaccionID = uuid.NewString()
	}
	if pago.Fecha.IsZero() {
		pago.Fecha = time.Now()
	}

	versionPrevia := reserva.Version
	reserva.Pagos = append(reserva.Pagos, pago)

	if reserva.Estado == models.EstadoReservada && reserva.PagoCompleto() {
		if err := estado.Confirmar(reserva); err != nil {
			return nil, err
		}
	}

	if err := s.reservas.AplicarTransicion(reserva, versionPrevia, &pago, nil); err != nil {
		return nil, err
	}

	s.logger.Info("Pago de %.2f registrado en reserva %d, estado %s",
		pago.Monto, reserva.ID, reserva.Estado)
	return s.reservas.PorID(reserva.ID)
}

// CheckIn registra la llegada del huésped: CONFIRMADA -> EFECTUADA
func (s *ReservaService) CheckIn(reservaID uint) (*models.Reserva, error) {
	reserva, err := s.reservas.PorID(reservaID)
	if err != nil {
		return nil, err
	}

	versionPrevia := reserva.Version
	if err := models.GetReservaState(reserva.Estado).CheckIn(reserva); err != nil {
		return nil, err
	}

	if err := s.reservas.AplicarTransicion(reserva, versionPrevia, nil, nil); err != nil {
		return nil, err
	}

	s.logger.Info("Check-in efectuado para reserva %d", reserva.ID)
	return reserva, nil
}

// CheckOut registra la salida del huésped: EFECTUADA -> FINALIZADA si el pago
// está completo, EFECTUADA -> ADEUDADA si queda saldo. Acepta opcionalmente la
// review del host sobre el huésped, que se escribe una única vez en este
// momento y es inmutable después.
func (s *ReservaService) CheckOut(reservaID uint, hostReview *ReviewParams) (*models.Reserva, error) {
	reserva, err := s.reservas.PorID(reservaID)
	if err != nil {
		return nil, err
	}

	var review *models.Review
	if hostReview != nil {
		if err := validator.ValidarRating(hostReview.Rating); err != nil {
			return nil, err
		}
		if reserva.BuscarReview(models.ReviewHost) != nil {
			return nil, errors.ErrReviewYaExiste
		}
		review = &models.Review{
			ReservaID:  reserva.ID,
			Tipo:       models.ReviewHost,
			Rating:     hostReview.Rating,
			Comentario: hostReview.Comentario,
		}
	}

	versionPrevia := reserva.Version
	if err := models.GetReservaState(reserva.Estado).CheckOut(reserva, reserva.PagoCompleto()); err != nil {
		return nil, err
	}

	if err := s.reservas.AplicarTransicion(reserva, versionPrevia, nil, review); err != nil {
		return nil, err
	}

	s.logger.Info("Check-out de reserva %d, estado final %s", reserva.ID, reserva.Estado)
	return s.reservas.PorID(reserva.ID)
}

// Cancelar pasa la reserva a CANCELADA. Solo es legal desde RESERVADA o
// CONFIRMADA; CANCELADA es terminal.
func (s *ReservaService) Cancelar(reservaID uint) (*models.Reserva, error) {
	reserva, err := s.reservas.PorID(reservaID)
	if err != nil {
		return nil, err
	}

	versionPrevia := reserva.Version
	if err := models.GetReservaState(reserva.Estado).Cancelar(reserva); err != nil {
		return nil, err
	}

	if err := s.reservas.AplicarTransicion(reserva, versionPrevia, nil, nil); err != nil {
		return nil, err
	}

	s.logger.Info("Reserva %d cancelada", reserva.ID)
	return reserva, nil
}

// AgregarRatingCliente escribe la review del cliente después de la estadía.
// Solo es válida en FINALIZADA y una única vez; una segunda escritura se
// rechaza, no se pisa la existente.
func (s *ReservaService) AgregarRatingCliente(reservaID uint, params ReviewParams) (*models.Reserva, error) {
	if err := validator.ValidarRating(params.Rating); err != nil {
		return nil, err
	}

	reserva, err := s.reservas.PorID(reservaID)
	if err != nil {
		return nil, err
	}

	if !models.GetReservaState(reserva.Estado).PuedeAgregarRatingCliente() {
		return nil, errors.ErrTransicionInvalida
	}

	if reserva.BuscarReview(models.ReviewCliente) != nil {
		return nil, errors.ErrReviewYaExiste
	}

	review := &models.Review{
		ReservaID:  reserva.ID,
		Tipo:       models.ReviewCliente,
		Rating:     params.Rating,
		Comentario: params.Comentario,
	}

	// El estado no cambia pero la versión avanza igual para serializar
	// escrituras concurrentes sobre la misma reserva
	if err := s.reservas.AplicarTransicion(reserva, reserva.Version, nil, review); err != nil {
		return nil, err
	}

	s.logger.Info("Rating del cliente agregado a reserva %d: %.1f estrellas", reserva.ID, params.Rating)
	return s.reservas.PorID(reserva.ID)
}

// BloquearHabitacion crea una reserva sintética en estado BLOQUEADA que hace
// no disponible la habitación en el rango, sin huésped ni precio
func (s *ReservaService) BloquearHabitacion(habitacionID uint, desde, hasta time.Time) (*models.Reserva, error) {
	return s.crearAdministrativa(habitacionID, desde, hasta, models.EstadoBloqueada)
}

// CerrarHabitacion crea una reserva sintética en estado CERRADA
func (s *ReservaService) CerrarHabitacion(habitacionID uint, desde, hasta time.Time) (*models.Reserva, error) {
	return s.crearAdministrativa(habitacionID, desde, hasta, models.EstadoCerrada)
}

func (s *ReservaService) crearAdministrativa(habitacionID uint, desde, hasta time.Time, estado models.EstadoReserva) (*models.Reserva, error) {
	if err := validator.ValidarFechasReserva(desde, hasta); err != nil {
		return nil, err
	}

	habitacion, err := s.catalogo.HabitacionPorID(habitacionID)
	if err != nil {
		return nil, err
	}

	// Los bloqueos administrativos no pasan por el resolver de tarifas ni
	// llevan precio: solo marcan la habitación como no disponible
	reserva := &models.Reserva{
		HabitacionID: habitacion.ID,
		HotelID:      habitacion.HotelID,
		CheckIn:      desde,
		CheckOut:     hasta,
		Estado:       estado,
		Version:      1,
	}

	if err := s.reservas.Crear(reserva); err != nil {
		return nil, err
	}

	s.logger.Info("Habitación %d marcada %s de %s a %s",
		habitacionID, estado, desde.Format("2006-01-02"), hasta.Format("2006-01-02"))
	return reserva, nil
}

// CancelarVencidas cancela las reservas RESERVADA cuyo check-in ya pasó sin
// pago completo. La ejecuta el job nocturno; devuelve la cantidad cancelada.
func (s *ReservaService) CancelarVencidas(ahora time.Time) (int, error) {
	vencidas, err := s.reservas.ReservadasConCheckInAnterior(ahora)
	if err != nil {
		return 0, err
	}

	canceladas := 0
	for i := range vencidas {
		reserva := &vencidas[i]
		versionPrevia := reserva.Version
		if err := models.GetReservaState(reserva.Estado).Cancelar(reserva); err != nil {
			continue
		}
		if err := s.reservas.AplicarTransicion(reserva, versionPrevia, nil, nil); err != nil {
			s.logger.Error("No se pudo cancelar la reserva vencida %d: %v", reserva.ID, err)
			continue
		}
		canceladas++
	}

	if canceladas > 0 {
		s.logger.Info("%d reservas vencidas canceladas", canceladas)
	}
	return canceladas, nil
}
