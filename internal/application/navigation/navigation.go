// Package navigation define el menú lateral del panel filtrado por rol.
package navigation

import "github.com/jhoicas/panel-minorista/internal/domain/entity"

// Item entrada del menú. Role vacío = visible para todos.
type Item struct {
	Title string      `json:"title"`
	Href  string      `json:"href"`
	Role  entity.Role `json:"role,omitempty"`
}

var items = []Item{
	{Title: "Dashboard", Href: "/"},
	{Title: "Inventario", Href: "/inventory"},
	{Title: "Ventas", Href: "/sales"},
	{Title: "Compras", Href: "/purchases"},
	{Title: "Reportes", Href: "/reports"},
	{Title: "Usuarios", Href: "/users", Role: entity.RoleAdministrador},
	{Title: "Configuración", Href: "/settings", Role: entity.RoleAdministrador},
}

// UserMenu entradas del menú de usuario.
var UserMenu = []Item{
	{Title: "Perfil", Href: "/profile"},
	{Title: "Configuración", Href: "/settings"},
}

// All todas las entradas, sin filtrar.
func All() []Item {
	return append([]Item(nil), items...)
}

// ForRole entradas visibles para el rol dado.
func ForRole(role entity.Role) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Role == "" || it.Role == role {
			out = append(out, it)
		}
	}
	return out
}

// Allowed indica si el rol puede acceder a href. Rutas fuera del menú se permiten.
func Allowed(role entity.Role, href string) bool {
	for _, it := range items {
		if it.Href == href {
			return it.Role == "" || it.Role == role
		}
	}
	return true
}
