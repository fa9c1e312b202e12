package dto

// CreateEmpresaRequest body para POST /api/empresas.
type CreateEmpresaRequest struct {
	RazonSocial    string `json:"razon_social"`
	NIF            string `json:"nif"`
	Pais           string `json:"pais,omitempty"` // por defecto "ES"
	Direccion      string `json:"direccion,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Email          string `json:"email,omitempty"`
	RegimenRecargo bool   `json:"regimen_recargo,omitempty"`
}

// EmpresaResponse empresa en respuestas.
type EmpresaResponse struct {
	ID             string `json:"id"`
	RazonSocial    string `json:"razon_social"`
	NIF            string `json:"nif"`
	Pais           string `json:"pais"`
	Direccion      string `json:"direccion,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Email          string `json:"email,omitempty"`
	RegimenRecargo bool   `json:"regimen_recargo"`
	Estado         string `json:"estado"`
}
