package dto

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	NIT     string `json:"nit"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// SupplierResponse representación pública de un proveedor.
type SupplierResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	NIT       string `json:"nit"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	Active    bool   `json:"active"`
}

// CreateCustomerRequest alta de cliente. El documento exigido depende del
// tipo: NIT para jurídica, CC para natural.
type CreateCustomerRequest struct {
	Type          string `json:"type"` // juridica | natural
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	NIT           string `json:"nit"`
	CC            string `json:"cc"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
}

// CustomerResponse representación pública de un cliente.
type CustomerResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	NIT           string `json:"nit,omitempty"`
	CC            string `json:"cc,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Active        bool   `json:"active"`
}
