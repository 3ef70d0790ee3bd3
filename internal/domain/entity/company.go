package entity

import "time"

// Company representa una empresa/tenant del sistema. Es la unidad de
// aislamiento de datos: todo registro de catálogo, inventario y compras
// pertenece a exactamente una empresa.
type Company struct {
	ID        string
	Name      string
	NIT       string // identificación tributaria, única en el sistema
	Address   string
	City      string
	State     string
	ZipCode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
