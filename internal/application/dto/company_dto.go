package dto

// CreateCompanyRequest datos para crear una empresa.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	NIT     string `json:"nit"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// CompanyResponse representación pública de una empresa.
type CompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	NIT     string `json:"nit"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AddMembershipRequest alta de membresía usuario-empresa.
type AddMembershipRequest struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"` // admin | member; member por defecto
}

// MembershipResponse representación de una membresía.
type MembershipResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
}
