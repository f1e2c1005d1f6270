package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panel-minorista/internal/application/navigation"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

func titles(items []navigation.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestForRole(t *testing.T) {
	assert.Equal(t,
		[]string{"Dashboard", "Inventario", "Ventas", "Compras", "Reportes", "Usuarios", "Configuración"},
		titles(navigation.ForRole(entity.RoleAdministrador)))
	assert.Equal(t,
		[]string{"Dashboard", "Inventario", "Ventas", "Compras", "Reportes"},
		titles(navigation.ForRole(entity.RoleVendedor)))
}

func TestAllowed(t *testing.T) {
	assert.True(t, navigation.Allowed(entity.RoleAdministrador, "/users"))
	assert.False(t, navigation.Allowed(entity.RoleVendedor, "/settings"))
	assert.True(t, navigation.Allowed(entity.RoleVendedor, "/sales"))
	assert.True(t, navigation.Allowed(entity.RoleVendedor, "/profile"))
}

func TestAll_EsCopia(t *testing.T) {
	all := navigation.All()
	all[0].Title = "x"
	assert.Equal(t, "Dashboard", navigation.All()[0].Title)
}
