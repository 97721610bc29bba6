package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/radicados-api/internal/domain/entity"
)

func TestTableName_EscapaIdentificadores(t *testing.T) {
	assert.Equal(t, `"public"."radicados"`, tableName("public", "radicados"))
	assert.Equal(t, `"festivos_colombia"`, tableName("", "festivos_colombia"))
	assert.Equal(t, `"app"."raro""tabla"`, tableName("app", `raro"tabla`))
}

func TestListWhere_SinFiltros(t *testing.T) {
	where, args := listWhere(entity.RadicadoFilter{Estado: entity.EstadoTodos})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestListWhere_EstadoYBusqueda(t *testing.T) {
	where, args := listWhere(entity.RadicadoFilter{Estado: entity.EstadoPendientes, Search: " 2025-ER "})
	assert.Equal(t,
		" WHERE fecha_radicado_respuesta IS NULL AND (numero_radicado ILIKE $1 OR funcionario ILIKE $1 OR tema ILIKE $1 OR remitente ILIKE $1)",
		where)
	assert.Equal(t, []any{"%2025-ER%"}, args)
}

func TestListWhere_Alertas(t *testing.T) {
	where, _ := listWhere(entity.RadicadoFilter{Estado: entity.EstadoAlertas})
	assert.Equal(t, " WHERE alerta = true", where)

	where, _ = listWhere(entity.RadicadoFilter{Estado: entity.EstadoRespondidos})
	assert.Equal(t, " WHERE fecha_radicado_respuesta IS NOT NULL", where)
}
