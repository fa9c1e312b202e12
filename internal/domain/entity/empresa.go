package entity

import "time"

// Empresa representa la sociedad emisora de las facturas (tenant del sistema).
type Empresa struct {
	ID          string
	RazonSocial string
	NIF         string // NIF/CIF español del emisor
	Pais        string // código ISO 3166-1 alfa-2 ("ES")
	Direccion   string
	Telefono    string
	Email       string
	// RegimenRecargo: la empresa factura a minoristas en recargo de equivalencia
	// por defecto (el recargo sigue pudiendo fijarse línea a línea).
	RegimenRecargo bool
	Estado         string // active, suspended, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
