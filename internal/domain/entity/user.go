package entity

// Role rol de un usuario del panel.
type Role string

// Roles válidos para User.
const (
	RoleAdministrador Role = "Administrador"
	RoleVendedor      Role = "Vendedor"
)

// Valid indica si el rol es uno de los dos admitidos.
func (r Role) Valid() bool {
	return r == RoleAdministrador || r == RoleVendedor
}

// User representa un usuario del sistema.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName nombre y apellido separados por espacio.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
