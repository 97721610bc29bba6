package radicados_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/application/radicados"
	"github.com/jhoicas/radicados-api/internal/domain"
	"github.com/jhoicas/radicados-api/internal/domain/calendar"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
	"github.com/jhoicas/radicados-api/internal/infrastructure/memory"
)

const idPendiente = "6f1c2b9e-0000-4000-8000-000000000001"

var bogota, _ = time.LoadLocation("America/Bogota")

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, bogota)
	return &t
}

// buildUseCase hoy = lunes 20 de enero de 2025.
func buildUseCase(seed ...*entity.Radicado) (*radicados.RadicadoUseCase, *memory.RadicadoStore) {
	store := memory.NewRadicadoStore(seed...)
	cal := calendar.New(calendar.NewStaticSource(bogota), bogota, zerolog.Nop(),
		calendar.WithClock(func() time.Time { return time.Date(2025, 1, 20, 15, 0, 0, 0, time.UTC) }))
	return radicados.NewRadicadoUseCase(store, cal, calendar.DefaultPolicy(), zerolog.Nop()), store
}

func pendiente() *entity.Radicado {
	return &entity.Radicado{
		ID:             idPendiente,
		Funcionario:    "Laura Gómez",
		NumeroRadicado: "2025-ER-0001",
		FechaRadicado:  day(2025, 1, 2),
		Alerta:         true,
		CreatedAt:      time.Date(2025, 1, 2, 10, 0, 0, 0, bogota),
	}
}

func TestCreate_ProyectaFechaLimiteDesdeAsignacion(t *testing.T) {
	uc, _ := buildUseCase()

	out, err := uc.Create(context.Background(), dto.CreateRadicadoRequest{
		Funcionario:     " Laura Gómez ",
		NumeroRadicado:  "2025-ER-0100",
		FechaAsignacion: "2025-01-06",
		Canal:           "Correo Electrónico",
	})
	require.NoError(t, err)

	assert.Equal(t, "Laura Gómez", out.Funcionario)
	require.NotNil(t, out.FechaRadicado)
	assert.Equal(t, "2025-01-20", *out.FechaRadicado, "sin fecha de radicación se usa hoy")
	require.NotNil(t, out.FechaLimiteRespuesta)
	assert.Equal(t, "2025-01-28", *out.FechaLimiteRespuesta)
	assert.False(t, out.Alerta)
	assert.Equal(t, radicados.EstadoPendiente, out.Estado)
}

func TestCreate_SinAsignacionNoFijaFechaLimite(t *testing.T) {
	uc, _ := buildUseCase()

	out, err := uc.Create(context.Background(), dto.CreateRadicadoRequest{
		Funcionario: "Ana", NumeroRadicado: "2025-ER-0101", FechaRadicado: "2025-01-10",
	})
	require.NoError(t, err)
	assert.Nil(t, out.FechaLimiteRespuesta)
	assert.Equal(t, "2025-01-10", *out.FechaRadicado)
}

func TestCreate_FechaInvalida(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Create(context.Background(), dto.CreateRadicadoRequest{
		Funcionario: "Ana", NumeroRadicado: "X", FechaAsignacion: "06/01/2025",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_NumeroDuplicado(t *testing.T) {
	uc, _ := buildUseCase(pendiente())

	_, err := uc.Create(context.Background(), dto.CreateRadicadoRequest{
		Funcionario: "Ana", NumeroRadicado: "2025-ER-0001",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGet_IDInexistente(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Get(context.Background(), "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Get(context.Background(), "6f1c2b9e-0000-4000-8000-0000000000ff")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkResponded_CalculaDiasYLimpiaAlerta(t *testing.T) {
	uc, _ := buildUseCase(pendiente())

	out, err := uc.MarkResponded(context.Background(), idPendiente)
	require.NoError(t, err)

	require.NotNil(t, out.FechaRadicadoRespuesta)
	assert.Equal(t, "2025-01-20", *out.FechaRadicadoRespuesta)
	require.NotNil(t, out.DiasRespuesta)
	// del 2 al 20 de enero, sin fines de semana ni el festivo del 6
	assert.Equal(t, 11, *out.DiasRespuesta)
	assert.False(t, out.Alerta)
	assert.Equal(t, radicados.EstadoRespondido, out.Estado)

	_, err = uc.MarkResponded(context.Background(), idPendiente)
	assert.ErrorIs(t, err, domain.ErrAlreadyResponded)
}

func TestMarkResponded_SinFechaDeRadicacionDejaDiasNulos(t *testing.T) {
	r := pendiente()
	r.FechaRadicado = nil
	uc, _ := buildUseCase(r)

	out, err := uc.MarkResponded(context.Background(), idPendiente)
	require.NoError(t, err)
	assert.Nil(t, out.DiasRespuesta)
}

func TestRespond_Completa(t *testing.T) {
	uc, _ := buildUseCase(pendiente())

	out, err := uc.Respond(context.Background(), idPendiente, dto.RespondRequest{
		Tipo:                    dto.TipoRespuestaCompleta,
		NumeroRadicadoRespuesta: " 2025-EE-0042 ",
		FechaRespuesta:          "2025-01-15",
		RequirioVisita:          true,
	})
	require.NoError(t, err)

	r := out.Radicado
	assert.Equal(t, "2025-EE-0042", r.NumeroRadicadoRespuesta)
	assert.Equal(t, "2025-01-15", *r.FechaRadicadoRespuesta)
	assert.Equal(t, 8, *r.DiasRespuesta)
	assert.Equal(t, entity.RespuestaParcialNo, r.RespuestaParcial)
	assert.True(t, r.RequirioVisita)
	assert.Nil(t, out.NuevaFechaLimite)
}

func TestRespond_ParcialExtiendePlazoQuinceDias(t *testing.T) {
	uc, _ := buildUseCase(pendiente())

	out, err := uc.Respond(context.Background(), idPendiente, dto.RespondRequest{
		Tipo:                    dto.TipoRespuestaParcial,
		NumeroRadicadoRespuesta: "2025-EE-0043",
		FechaRespuesta:          "2025-01-20",
	})
	require.NoError(t, err)

	require.NotNil(t, out.NuevaFechaLimite)
	assert.Equal(t, "2025-02-10", *out.NuevaFechaLimite)
	r := out.Radicado
	assert.Equal(t, "2025-02-10", *r.FechaLimiteRespuesta)
	assert.Nil(t, r.FechaRadicadoRespuesta, "la respuesta parcial no cierra el radicado")
	assert.Equal(t, entity.RespuestaParcialSi, r.RespuestaParcial)
	assert.False(t, r.Alerta)
}

func TestRespond_RadicadoYaRespondido(t *testing.T) {
	r := pendiente()
	r.FechaRadicadoRespuesta = day(2025, 1, 10)
	uc, _ := buildUseCase(r)

	_, err := uc.Respond(context.Background(), idPendiente, dto.RespondRequest{
		Tipo: dto.TipoRespuestaParcial, NumeroRadicadoRespuesta: "X", FechaRespuesta: "2025-01-20",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyResponded)
}

func TestList_FiltraPorEstadoYBusqueda(t *testing.T) {
	respondido := &entity.Radicado{
		ID: "6f1c2b9e-0000-4000-8000-000000000002", Funcionario: "Pedro Ruiz", NumeroRadicado: "2025-ER-0002",
		Tema: "Permiso de vertimientos", FechaRadicadoRespuesta: day(2025, 1, 8), CreatedAt: time.Date(2025, 1, 3, 0, 0, 0, 0, bogota),
	}
	uc, _ := buildUseCase(pendiente(), respondido)

	out, err := uc.List(context.Background(), dto.RadicadoListRequest{Estado: "pendientes"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2025-ER-0001", out.Items[0].NumeroRadicado)
	assert.Equal(t, 20, out.Page.Limit)

	out, err = uc.List(context.Background(), dto.RadicadoListRequest{Search: "VERTIMIENTOS"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, radicados.EstadoRespondido, out.Items[0].Estado)

	out, err = uc.List(context.Background(), dto.RadicadoListRequest{Estado: "alertas"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page.Total)
}

func TestListAll_RecorreTodasLasPaginas(t *testing.T) {
	var seed []*entity.Radicado
	for i := 0; i < 1203; i++ {
		seed = append(seed, &entity.Radicado{
			ID:             time.Duration(i).String(),
			NumeroRadicado: time.Duration(i).String(),
			CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, i, bogota),
		})
	}
	uc, _ := buildUseCase(seed...)

	all, err := uc.ListAll(context.Background(), "", "todos")
	require.NoError(t, err)
	assert.Len(t, all, 1203)
}
