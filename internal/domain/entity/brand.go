package entity

import "time"

// Brand representa una marca de producto (dato de referencia por empresa).
// Nombre único por empresa.
type Brand struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
