package dto

import "github.com/jhoicas/panel-minorista/internal/domain/entity"

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate comprueba que usuario y contraseña no estén vacíos.
func (r LoginRequest) Validate() error { return validateStruct(r) }

// LoginResult datos del login exitoso: usuario y token de sesión.
type LoginResult struct {
	User  entity.User `json:"user"`
	Token string      `json:"token"`
}

// LoginForm estado del formulario de login.
type LoginForm struct {
	req LoginRequest
}

func (f *LoginForm) SetUsername(v string) *LoginForm { f.req.Username = v; return f }
func (f *LoginForm) SetPassword(v string) *LoginForm { f.req.Password = v; return f }

// Build valida y devuelve la petición.
func (f *LoginForm) Build() (LoginRequest, error) {
	if err := f.req.Validate(); err != nil {
		return LoginRequest{}, err
	}
	return f.req, nil
}
