package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("Credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrTotalMismatch      = errors.New("el total no coincide con la suma de los ítems")
	ErrNotInitialized     = errors.New("sesión no inicializada")
	ErrOutsideProvider    = errors.New("useAuth must be used within an AuthProvider")
)

// Kind clasifica el origen de un fallo devuelto por el cliente de API o los stores.
type Kind string

const (
	KindInvalidCredentials Kind = "invalid_credentials"
	KindHTTP               Kind = "http"
	KindNetwork            Kind = "network"
	KindDecode             Kind = "decode"
	KindRejected           Kind = "rejected" // sobre con success=false
	KindValidation         Kind = "validation"
	KindCanceled           Kind = "canceled"
	KindUnknown            Kind = "unknown"
)

// Error es el resultado fallido tipado: Err(kind, message).
// Status solo tiene sentido para KindHTTP.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError construye un *Error con mensaje y causa opcional.
func NewError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// HTTPError fallo HTTP genérico con el status embebido en el mensaje.
func HTTPError(status int) *Error {
	return &Error{
		Kind:    KindHTTP,
		Status:  status,
		Message: fmt.Sprintf("HTTP error! status: %d", status),
	}
}

// KindOf devuelve el Kind de err, o KindUnknown si no es un *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// Normalize garantiza que err sea un *Error; si no lo es lo envuelve con el mensaje por defecto.
func Normalize(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: KindUnknown, Message: fallback, Err: err}
}
