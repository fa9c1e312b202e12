package entity

import "time"

// Tipos de cliente a efectos de facturación. Un empresario o profesional debe
// identificarse con NIF en facturas ordinarias y simplificadas.
const (
	ClienteParticular = "particular"
	ClienteEmpresario = "empresario/profesional"
)

// Cliente representa una entidad (cliente) de la empresa.
type Cliente struct {
	ID        string
	EmpresaID string
	Nombre    string
	Tipo      string // ClienteParticular | ClienteEmpresario
	NIF       string // NIF/CIF/NIE; puede estar vacío para particulares
	Pais      string // código ISO 3166-1 alfa-2
	Direccion string
	Email     string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EsEmpresario indica si el cliente actúa como empresario o profesional.
func (c *Cliente) EsEmpresario() bool {
	return c != nil && c.Tipo == ClienteEmpresario
}
