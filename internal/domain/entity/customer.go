package entity

import "time"

// Tipos de cliente.
const (
	CustomerTypeJuridica = "juridica" // persona jurídica: requiere NIT
	CustomerTypeNatural  = "natural"  // persona natural: requiere cédula
)

// Customer representa un cliente de la empresa. El documento exigido
// depende del tipo: NIT para jurídica, cédula (CC) para natural.
type Customer struct {
	ID            string
	CompanyID     string
	Type          string // juridica | natural
	Name          string
	ContactPerson string
	NIT           string
	CC            string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	ZipCode       string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
