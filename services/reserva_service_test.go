package services

import (
	stderrors "errors"
	"testing"
	"time"

	"hotelera/errors"
	"hotelera/models"
)

func nuevoServicioReservas(reservas *fakeReservaStore, catalogo *fakeCatalogoStore, tarifas *fakeTarifaStore) *ReservaService {
	return NewReservaService(ReservaServiceOptions{
		Reservas: reservas,
		Catalogo: catalogo,
		Resolver: NewTarifaResolver(tarifas),
	})
}

func crearReservaDePrueba(t *testing.T, svc *ReservaService) *models.Reserva {
	t.Helper()
	reserva, err := svc.CrearReserva(CrearReservaParams{
		HabitacionID:  1,
		CheckIn:       fecha(2025, time.June, 1),
		CheckOut:      fecha(2025, time.June, 3),
		NombreHuesped: "Ana García",
		EmailHuesped:  "ana@example.com",
	})
	if err != nil {
		t.Fatalf("error creando reserva: %v", err)
	}
	return reserva
}

func TestCrearReservaCongelaPrecio(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())

	reserva := crearReservaDePrueba(t, svc)

	if reserva.Estado != models.EstadoReservada {
		t.Errorf("estado = %s, se esperaba RESERVADA", reserva.Estado)
	}
	if reserva.PrecioNoche != 10000 {
		t.Errorf("precioNoche = %v, se esperaba 10000", reserva.PrecioNoche)
	}
	if reserva.PrecioTotal != 20000 {
		t.Errorf("precioTotal = %v, se esperaban 2 noches a 10000", reserva.PrecioTotal)
	}
	if reserva.Version != 1 {
		t.Errorf("versión inicial = %d, se esperaba 1", reserva.Version)
	}
}

func TestCrearReservaSinTarifaSeRechaza(t *testing.T) {
	tarifas := &fakeTarifaStore{} // sin tarifas cargadas
	svc := nuevoServicioReservas(newFakeReservaStore(), catalogoDePrueba(), tarifas)

	_, err := svc.CrearReserva(CrearReservaParams{
		HabitacionID:  1,
		CheckIn:       fecha(2025, time.June, 1),
		CheckOut:      fecha(2025, time.June, 3),
		NombreHuesped: "Ana García",
		EmailHuesped:  "ana@example.com",
	})
	if !stderrors.Is(err, errors.ErrSinTarifa) {
		t.Fatalf("se esperaba ErrSinTarifa, se obtuvo %v", err)
	}
}

func TestCrearReservaSolapadaDevuelveConflicto(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())

	crearReservaDePrueba(t, svc)

	_, err := svc.CrearReserva(CrearReservaParams{
		HabitacionID:  1,
		CheckIn:       fecha(2025, time.June, 2),
		CheckOut:      fecha(2025, time.June, 4),
		NombreHuesped: "Otro Huésped",
		EmailHuesped:  "otro@example.com",
	})
	if !stderrors.Is(err, errors.ErrConflicto) {
		t.Fatalf("se esperaba ErrConflicto, se obtuvo %v", err)
	}

	// Rango contiguo, sin solapamiento: el día del check-out queda libre
	if _, err := svc.CrearReserva(CrearReservaParams{
		HabitacionID:  1,
		CheckIn:       fecha(2025, time.June, 3),
		CheckOut:      fecha(2025, time.June, 5),
		NombreHuesped: "Otro Huésped",
		EmailHuesped:  "otro@example.com",
	}); err != nil {
		t.Fatalf("una reserva contigua no solapa: %v", err)
	}
}

func TestPagoParcialNoConfirma(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())
	reserva := crearReservaDePrueba(t, svc)

	actualizada, err := svc.RegistrarPago(reserva.ID, models.Pago{
		Metodo: "tarjeta", Monto: 5000, Estado: models.PagoAprobado,
	})
	if err != nil {
		t.Fatalf("error registrando pago: %v", err)
	}

	if actualizada.Estado != models.EstadoReservada {
		t.Errorf("un pago parcial deja la reserva en RESERVADA, estado = %s", actualizada.Estado)
	}
	if actualizada.TotalAprobado() != 5000 {
		t.Errorf("total aprobado = %v, se esperaba 5000", actualizada.TotalAprobado())
	}
}

func TestPagoCompletoConfirma(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())
	reserva := crearReservaDePrueba(t, svc)

	// Dos pagos parciales que acumulan el total
	if _, err := svc.RegistrarPago(reserva.ID, models.Pago{
		Metodo: "tarjeta", Monto: 12000, Estado: models.PagoAprobado,
	}); err != nil {
		t.Fatalf("error registrando primer pago: %v", err)
	}

	actualizada, err := svc.RegistrarPago(reserva.ID, models.Pago{
		Metodo: "transferencia", Monto: 8000, Estado: models.PagoAprobado,
	})
	if err != nil {
		t.Fatalf("error registrando segundo pago: %v", err)
	}

	if actualizada.Estado != models.EstadoConfirmada {
		t.Errorf("estado = %s, se esperaba CONFIRMADA con el total cubierto", actualizada.Estado)
	}
	if len(actualizada.Pagos) != 2 {
		t.Errorf("pagos = %d, se esperaban 2", len(actualizada.Pagos))
	}
}

func TestPagoRechazadoNoSuma(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())
	reserva := crearReservaDePrueba(t, svc)

	actualizada, err := svc.RegistrarPago(reserva.ID, models.Pago{
		Metodo: "tarjeta", Monto: 20000, Estado: models.PagoRechazado,
	})
	if err != nil {
		t.Fatalf("un pago rechazado igual se asienta en el libro: %v", err)
	}

	if actualizada.Estado != models.EstadoReservada {
		t.Errorf("estado = %s, un pago rechazado no confirma", actualizada.Estado)
	}
	if actualizada.TotalAprobado() != 0 {
		t.Errorf("total aprobado = %v, se esperaba 0", actualizada.TotalAprobado())
	}
	if len(actualizada.Pagos) != 1 {
		t.Errorf("el pago rechazado debe quedar asentado")
	}
}

func TestCicloCompletoHastaFinalizada(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())
	reserva := crearReservaDePrueba(t, svc)

	if _, err := svc.RegistrarPago(reserva.ID, models.Pago{
		Metodo: "tarjeta", Monto: 20000, Estado: models.PagoAprobado,
	}); err != nil {
		t.Fatalf("error en pago: %v", err)
	}

	efectuada, err := svc.CheckIn(reserva.ID)
	if err != nil {
		t.Fatalf("error en check-in: %v", err)
	}
	if efectuada.Estado != models.EstadoEfectuada {
		t.Fatalf("estado tras check-in = %s, se esperaba EFECTUADA", efectuada.Estado)
	}

	// Una reserva con huésped alojado ya no se puede cancelar
	if _, err := svc.Cancelar(reserva.ID); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Fatalf("cancelar en EFECTUADA debe fallar, se obtuvo %v", err)
	}

	finalizada, err := svc.CheckOut(reserva.ID, &ReviewParams{Rating: 4, Comentario: "huésped impecable"})
	if err != nil {
		t.Fatalf("error en check-out: %v", err)
	}
	if finalizada.Estado != models.EstadoFinalizada {
		t.Errorf("estado final = %s, se esperaba FINALIZADA", finalizada.Estado)
	}
	if rv := finalizada.BuscarReview(models.ReviewHost); rv == nil || rv.Rating != 4 {
		t.Errorf("falta la review del host")
	}

	// El check-out es único
	if _, err := svc.CheckOut(reserva.ID, nil); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Errorf("un segundo check-out debe fallar, se obtuvo %v", err)
	}
}

func TestCheckOutConSaldoDejaAdeudada(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())
	reserva := crearReservaDePrueba(t, svc)

	if _, err := svc.RegistrarPago(reserva.ID, models.Pago{
		Metodo: "tarjeta", Monto: 20000, Estado: models.PagoAprobado,
	}); err != nil {
		t.Fatalf("error en pago: %v", err)
	}
	if _, err := svc.CheckIn(reserva.ID); err != nil {
		t.Fatalf("error en check-in: %v", err)
	}

	// El fake no permite editar pagos, así que se simula el saldo pendiente
	// inflando el precio total después del pago
	reservas.reservas[reserva.ID].PrecioTotal = 30000

	adeudada, err := svc.CheckOut(reserva.ID, nil)
	if err != nil {
		t.Fatalf("error en check-out: %v", err)
	}
	if adeudada.Estado != models.EstadoAdeudada {
		t.Fatalf("estado = %s, se esperaba ADEUDADA con saldo pendiente", adeudada.Estado)
	}

	// ADEUDADA sigue aceptando pagos para saldar la deuda
	saldada, err := svc.RegistrarPago(reserva.ID, models.Pago{
		Metodo: "efectivo", Monto: 10000, Estado: models.PagoAprobado,
	})
	if err != nil {
		t.Fatalf("error saldando deuda: %v", err)
	}
	if saldada.Estado != models.EstadoAdeudada {
		t.Errorf("saldar la deuda no cambia el estado, estado = %s", saldada.Estado)
	}
	if !saldada.PagoCompleto() {
		t.Errorf("el pago debería estar completo tras saldar")
	}
}

func TestCancelarDesdeReservadaYConfirmada(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())

	reserva := crearReservaDePrueba(t, svc)
	cancelada, err := svc.Cancelar(reserva.ID)
	if err != nil {
		t.Fatalf("error cancelando desde RESERVADA: %v", err)
	}
	if cancelada.Estado != models.EstadoCancelada {
		t.Errorf("estado = %s, se esperaba CANCELADA", cancelada.Estado)
	}

	// CANCELADA es terminal
	if _, err := svc.Cancelar(reserva.ID); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Errorf("cancelar dos veces debe fallar, se obtuvo %v", err)
	}
	if _, err := svc.CheckIn(reserva.ID); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Errorf("check-in sobre CANCELADA debe fallar, se obtuvo %v", err)
	}

	// La cancelada libera la habitación
	otra := crearReservaDePrueba(t, svc)
	if _, err := svc.RegistrarPago(otra.ID, models.Pago{
		Metodo: "tarjeta", Monto: 20000, Estado: models.PagoAprobado,
	}); err != nil {
		t.Fatalf("error en pago: %v", err)
	}
	confirmada, err := svc.Cancelar(otra.ID)
	if err != nil {
		t.Fatalf("error cancelando desde CONFIRMADA: %v", err)
	}
	if confirmada.Estado != models.EstadoCancelada {
		t.Errorf("estado = %s, se esperaba CANCELADA", confirmada.Estado)
	}
}

func TestTransicionInvalidaNoModificaLaReserva(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())
	reserva := crearReservaDePrueba(t, svc)

	// Check-in y check-out directos desde RESERVADA son ilegales
	if _, err := svc.CheckIn(reserva.ID); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Fatalf("check-in desde RESERVADA debe fallar, se obtuvo %v", err)
	}
	if _, err := svc.CheckOut(reserva.ID, nil); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Fatalf("check-out desde RESERVADA debe fallar, se obtuvo %v", err)
	}

	intacta, err := reservas.PorID(reserva.ID)
	if err != nil {
		t.Fatalf("error releyendo: %v", err)
	}
	if intacta.Estado != models.EstadoReservada || intacta.Version != 1 || len(intacta.Pagos) != 0 {
		t.Fatalf("una transición rechazada no debe modificar nada: %+v", intacta)
	}
}

func TestRatingClienteSoloEnFinalizada(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())
	reserva := crearReservaDePrueba(t, svc)

	if _, err := svc.AgregarRatingCliente(reserva.ID, ReviewParams{Rating: 5}); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Fatalf("rating en RESERVADA debe fallar, se obtuvo %v", err)
	}

	if _, err := svc.RegistrarPago(reserva.ID, models.Pago{
		Metodo: "tarjeta", Monto: 20000, Estado: models.PagoAprobado,
	}); err != nil {
		t.Fatalf("error en pago: %v", err)
	}
	if _, err := svc.CheckIn(reserva.ID); err != nil {
		t.Fatalf("error en check-in: %v", err)
	}
	if _, err := svc.CheckOut(reserva.ID, nil); err != nil {
		t.Fatalf("error en check-out: %v", err)
	}

	calificada, err := svc.AgregarRatingCliente(reserva.ID, ReviewParams{Rating: 4.5, Comentario: "muy buena estadía"})
	if err != nil {
		t.Fatalf("error agregando rating: %v", err)
	}
	rv := calificada.BuscarReview(models.ReviewCliente)
	if rv == nil || rv.Rating != 4.5 {
		t.Fatalf("falta la review del cliente")
	}
	if calificada.Estado != models.EstadoFinalizada {
		t.Errorf("el rating no cambia el estado, estado = %s", calificada.Estado)
	}

	// Una segunda review se rechaza, la primera no se pisa
	if _, err := svc.AgregarRatingCliente(reserva.ID, ReviewParams{Rating: 1}); !stderrors.Is(err, errors.ErrReviewYaExiste) {
		t.Fatalf("se esperaba ErrReviewYaExiste, se obtuvo %v", err)
	}
	releida, _ := reservas.PorID(reserva.ID)
	if rv := releida.BuscarReview(models.ReviewCliente); rv == nil || rv.Rating != 4.5 {
		t.Errorf("la review original no debe pisarse")
	}
}

func TestRatingInvalido(t *testing.T) {
	svc := nuevoServicioReservas(newFakeReservaStore(), catalogoDePrueba(), tarifasDePrueba())

	for _, rating := range []float64{0, 0.5, 5.5, 4.3} {
		if _, err := svc.AgregarRatingCliente(1, ReviewParams{Rating: rating}); err == nil {
			t.Errorf("rating %v debería ser inválido", rating)
		}
	}
}

func TestBloquearYCerrarHabitacion(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())

	bloqueo, err := svc.BloquearHabitacion(1, fecha(2025, time.July, 1), fecha(2025, time.July, 10))
	if err != nil {
		t.Fatalf("error bloqueando: %v", err)
	}
	if bloqueo.Estado != models.EstadoBloqueada {
		t.Errorf("estado = %s, se esperaba BLOQUEADA", bloqueo.Estado)
	}
	if bloqueo.PrecioTotal != 0 || bloqueo.PrecioNoche != 0 {
		t.Errorf("un bloqueo no lleva precio")
	}
	if !bloqueo.EsAdministrativa() {
		t.Errorf("un bloqueo es una reserva administrativa")
	}

	cierre, err := svc.CerrarHabitacion(2, fecha(2025, time.August, 1), fecha(2025, time.August, 31))
	if err != nil {
		t.Fatalf("error cerrando: %v", err)
	}
	if cierre.Estado != models.EstadoCerrada {
		t.Errorf("estado = %s, se esperaba CERRADA", cierre.Estado)
	}

	// Los estados administrativos no admiten transiciones ni pagos
	if _, err := svc.Cancelar(bloqueo.ID); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Errorf("cancelar un bloqueo debe fallar, se obtuvo %v", err)
	}
	if _, err := svc.RegistrarPago(cierre.ID, models.Pago{
		Metodo: "tarjeta", Monto: 1000, Estado: models.PagoAprobado,
	}); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Errorf("pagar sobre un cierre debe fallar, se obtuvo %v", err)
	}
}

func TestTransicionConcurrentePierdePorVersion(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())
	reserva := crearReservaDePrueba(t, svc)

	// Otra transición gana la carrera avanzando la versión por afuera
	if err := reservas.AplicarTransicion(&models.Reserva{ID: reserva.ID, Estado: models.EstadoCancelada}, 1, nil, nil); err != nil {
		t.Fatalf("error simulando la transición ganadora: %v", err)
	}

	// El perdedor opera sobre una versión vieja y recibe el rechazo
	stale := *reserva
	stale.Estado = models.EstadoConfirmada
	if err := reservas.AplicarTransicion(&stale, 1, nil, nil); !stderrors.Is(err, errors.ErrTransicionInvalida) {
		t.Fatalf("se esperaba ErrTransicionInvalida por versión vieja, se obtuvo %v", err)
	}

	final, _ := reservas.PorID(reserva.ID)
	if final.Estado != models.EstadoCancelada || final.Version != 2 {
		t.Fatalf("el estado del ganador no debe pisarse: %+v", final)
	}
}

func TestCancelarVencidas(t *testing.T) {
	reservas := newFakeReservaStore()
	svc := nuevoServicioReservas(reservas, catalogoDePrueba(), tarifasDePrueba())

	vencida := crearReservaDePrueba(t, svc) // check-in 1/6/2025

	vigente, err := svc.CrearReserva(CrearReservaParams{
		HabitacionID:  3,
		CheckIn:       fecha(2025, time.December, 1),
		CheckOut:      fecha(2025, time.December, 3),
		NombreHuesped: "Otro Huésped",
		EmailHuesped:  "otro@example.com",
	})
	if err != nil {
		t.Fatalf("error creando reserva vigente: %v", err)
	}

	canceladas, err := svc.CancelarVencidas(fecha(2025, time.July, 1))
	if err != nil {
		t.Fatalf("error cancelando vencidas: %v", err)
	}
	if canceladas != 1 {
		t.Fatalf("canceladas = %d, se esperaba 1", canceladas)
	}

	r1, _ := reservas.PorID(vencida.ID)
	if r1.Estado != models.EstadoCancelada {
		t.Errorf("la vencida debería estar CANCELADA, estado = %s", r1.Estado)
	}
	r2, _ := reservas.PorID(vigente.ID)
	if r2.Estado != models.EstadoReservada {
		t.Errorf("la vigente no debe tocarse, estado = %s", r2.Estado)
	}
}
