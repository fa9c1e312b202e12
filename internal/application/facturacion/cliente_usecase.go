package facturacion

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
	"github.com/Mackewinsson/facturacion-module-sub000/pkg/aeat"
)

// ClienteUseCase casos de uso CRUD para clientes (entidades de facturación).
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

func tipoClienteValido(tipo string) bool {
	return tipo == entity.ClienteParticular || tipo == entity.ClienteEmpresario
}

// validarNIFCliente comprueba el formato del NIF solo para clientes españoles;
// identificadores extranjeros se guardan tal cual.
func validarNIFCliente(pais, nif string) error {
	if nif == "" || aeat.NormalizarPais(pais) != "ES" {
		return nil
	}
	return aeat.ValidarNIF(nif)
}

// Create crea un nuevo cliente. El NIF puede ir vacío (particulares); la
// obligación de identificar al destinatario se valida al emitir la factura.
func (uc *ClienteUseCase) Create(empresaID string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || !tipoClienteValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	pais := aeat.NormalizarPais(in.Pais)
	if pais == "" {
		pais = "ES"
	}
	if err := validarNIFCliente(pais, in.NIF); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.NIF != "" {
		existing, _ := uc.repo.GetByEmpresaAndNIF(empresaID, in.NIF)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nombre:    in.Nombre,
		Tipo:      in.Tipo,
		NIF:       in.NIF,
		Pais:      pais,
		Direccion: in.Direccion,
		Email:     in.Email,
		Telefono:  in.Telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Get devuelve un cliente de la empresa.
func (uc *ClienteUseCase) Get(empresaID, clienteID string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes de la empresa.
func (uc *ClienteUseCase) List(empresaID string, limit, offset int) ([]*dto.ClienteResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de un cliente de la empresa.
func (uc *ClienteUseCase) Update(empresaID, clienteID string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.Nombre == "" || !tipoClienteValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	pais := aeat.NormalizarPais(in.Pais)
	if pais == "" {
		pais = cliente.Pais
	}
	if err := validarNIFCliente(pais, in.NIF); err != nil {
		return nil, domain.ErrInvalidInput
	}
	cliente.Nombre = in.Nombre
	cliente.Tipo = in.Tipo
	cliente.NIF = in.NIF
	cliente.Pais = pais
	cliente.Direccion = in.Direccion
	cliente.Email = in.Email
	cliente.Telefono = in.Telefono
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete elimina un cliente de la empresa.
func (uc *ClienteUseCase) Delete(empresaID, clienteID string) error {
	cliente, err := uc.repo.GetByID(clienteID)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(clienteID)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		EmpresaID: c.EmpresaID,
		Nombre:    c.Nombre,
		Tipo:      c.Tipo,
		NIF:       c.NIF,
		Pais:      c.Pais,
		Direccion: c.Direccion,
		Email:     c.Email,
		Telefono:  c.Telefono,
	}
}
