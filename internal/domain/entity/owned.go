package entity

// AssignCompany fija la empresa dueña del registro. Implementa el contrato
// tenant.Owned para que el scoping pueda asignar el tenant antes de
// persistir cualquier registro propiedad de una empresa.

func (b *Brand) AssignCompany(companyID string)           { b.CompanyID = companyID }
func (c *Category) AssignCompany(companyID string)        { c.CompanyID = companyID }
func (p *Product) AssignCompany(companyID string)         { p.CompanyID = companyID }
func (s *Supplier) AssignCompany(companyID string)        { s.CompanyID = companyID }
func (c *Customer) AssignCompany(companyID string)        { c.CompanyID = companyID }
func (m *StockMovement) AssignCompany(companyID string)   { m.CompanyID = companyID }
func (i *PurchaseInvoice) AssignCompany(companyID string) { i.CompanyID = companyID }
func (s *Sale) AssignCompany(companyID string)            { s.CompanyID = companyID }
func (p *PayableAccount) AssignCompany(companyID string)  { p.CompanyID = companyID }
