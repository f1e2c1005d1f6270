package dto

// APIResponse sobre de toda respuesta del backend: {data, message, success}.
type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// OK construye un sobre exitoso.
func OK[T any](data T, message string) *APIResponse[T] {
	return &APIResponse[T]{Data: data, Message: message, Success: true}
}

// Empty dato vacío para respuestas sin cuerpo útil (p. ej. DELETE).
type Empty struct{}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
