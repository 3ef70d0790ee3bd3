package dto

// RegisterRequest alta de usuario. Si CompanyName y CompanyNIT vienen
// informados se crea también la empresa y una membresía admin activa
// (flujo de registro inicial).
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name,omitempty"`
	CompanyNIT  string `json:"company_nit,omitempty"`
}

// LoginRequest credenciales de login (el email es la identidad).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	IsStaff  bool   `json:"is_staff,omitempty"`
}
