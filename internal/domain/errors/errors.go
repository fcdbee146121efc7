package errors

import (
	"fmt"
	"time"
)

// ValidationError representa una configuración inválida. Se reporta antes
// de cualquier llamada de red.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

// NewValidationError crea un nuevo error de validación
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NoChangesError indica que no hay cambios en el área de staging.
type NoChangesError struct{}

func (e *NoChangesError) Error() string {
	return "no staged changes to commit"
}

// TransportError indica una falla de DNS o de conexión. Host identifica el
// servidor inalcanzable para que el caller pueda sugerir revisar la red.
type TransportError struct {
	Host string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach %s: %v", e.Host, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError crea un nuevo error de transporte
func NewTransportError(host string, err error) *TransportError {
	return &TransportError{Host: host, Err: err}
}

// TimeoutError indica que el request fue abortado por exceder el timeout.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.Timeout)
}

// NewTimeoutError crea un nuevo error de timeout
func NewTimeoutError(timeout time.Duration) *TimeoutError {
	return &TimeoutError{Timeout: timeout}
}

// APIError indica un status no-2xx o una respuesta malformada/vacía.
// Body conserva el cuerpo crudo de la respuesta cuando está disponible.
type APIError struct {
	StatusCode int
	Reason     string
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 && e.Body != "" {
		return fmt.Sprintf("api error (HTTP %d): %s", e.StatusCode, e.Body)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error (HTTP %d): %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("api error: %s", e.Reason)
}

// NewAPIError crea un nuevo error de API
func NewAPIError(statusCode int, reason, body string) *APIError {
	return &APIError{StatusCode: statusCode, Reason: reason, Body: body}
}

// EmptyResultError indica que ninguna generación produjo un mensaje usable.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "no usable commit message was generated, try again"
}
