package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	// ErrNoActiveCompany: el usuario no tiene ninguna membresía activa.
	// Es una condición recuperable; el caller decide entre lista vacía o error al usuario.
	ErrNoActiveCompany = errors.New("el usuario no tiene empresa activa")
)

// FieldError señala entrada inválida en un campo concreto (ej: NIT
// obligatorio para cliente jurídico). errors.Is(err, ErrInvalidInput)
// devuelve true, así los handlers lo mapean como validación.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Msg }

func (e *FieldError) Unwrap() error { return ErrInvalidInput }
