package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/dto"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
	"github.com/Mackewinsson/facturacion-module-sub000/pkg/aeat"
)

// EmpresaUseCase casos de uso para empresas (emisores / tenants).
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create registra una empresa emisora. El NIF del emisor español se valida
// siempre: sin identificador correcto no se puede facturar.
func (uc *EmpresaUseCase) Create(in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	if in.RazonSocial == "" || in.NIF == "" {
		return nil, domain.ErrInvalidInput
	}
	pais := aeat.NormalizarPais(in.Pais)
	if pais == "" {
		pais = "ES"
	}
	if pais == "ES" {
		if err := aeat.ValidarNIF(in.NIF); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:             uuid.New().String(),
		RazonSocial:    in.RazonSocial,
		NIF:            in.NIF,
		Pais:           pais,
		Direccion:      in.Direccion,
		Telefono:       in.Telefono,
		Email:          in.Email,
		RegimenRecargo: in.RegimenRecargo,
		Estado:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// Get devuelve una empresa por ID.
func (uc *EmpresaUseCase) Get(empresaID string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	return toEmpresaResponse(empresa), nil
}

// List lista empresas registradas.
func (uc *EmpresaUseCase) List(limit, offset int) ([]*dto.EmpresaResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmpresaResponse(e))
	}
	return out, nil
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:             e.ID,
		RazonSocial:    e.RazonSocial,
		NIF:            e.NIF,
		Pais:           e.Pais,
		Direccion:      e.Direccion,
		Telefono:       e.Telefono,
		Email:          e.Email,
		RegimenRecargo: e.RegimenRecargo,
		Estado:         e.Estado,
	}
}
