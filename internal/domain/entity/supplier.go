package entity

import "time"

// Supplier representa un proveedor de la empresa.
type Supplier struct {
	ID        string
	CompanyID string
	Name      string
	NIT       string // único por empresa
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
