package dto

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"` // particular | empresario/profesional
	NIF       string `json:"nif,omitempty"`
	Pais      string `json:"pais"` // código ISO ("ES", "FR", "US"...)
	Direccion string `json:"direccion,omitempty"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
}

// UpdateClienteRequest body para PUT /api/clientes/:id.
type UpdateClienteRequest struct {
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	NIF       string `json:"nif,omitempty"`
	Pais      string `json:"pais"`
	Direccion string `json:"direccion,omitempty"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID        string `json:"id"`
	EmpresaID string `json:"empresa_id"`
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	NIF       string `json:"nif,omitempty"`
	Pais      string `json:"pais"`
	Direccion string `json:"direccion,omitempty"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
}
