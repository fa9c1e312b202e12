package facturacion_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/facturacion"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/aeat"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/fiscal"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeFacturaRepo struct {
	facturas map[string]*entity.Factura
	lineas   map[string][]entity.LineaFactura
	desglose map[string][]fiscal.BasePorTipo

	updateCalls int
}

func newFakeFacturaRepo() *fakeFacturaRepo {
	return &fakeFacturaRepo{
		facturas: make(map[string]*entity.Factura),
		lineas:   make(map[string][]entity.LineaFactura),
		desglose: make(map[string][]fiscal.BasePorTipo),
	}
}

func (r *fakeFacturaRepo) Create(f *entity.Factura) error {
	cp := *f
	r.facturas[f.ID] = &cp
	return nil
}

func (r *fakeFacturaRepo) CreateLinea(l *entity.LineaFactura) error {
	r.lineas[l.FacturaID] = append(r.lineas[l.FacturaID], *l)
	return nil
}

func (r *fakeFacturaRepo) ReplaceDesglose(facturaID string, bases []fiscal.BasePorTipo) error {
	r.desglose[facturaID] = bases
	return nil
}

func (r *fakeFacturaRepo) Update(f *entity.Factura) error {
	r.updateCalls++
	cp := *f
	r.facturas[f.ID] = &cp
	return nil
}

// GetByID devuelve una copia, igual que un repositorio real devuelve una fila
// nueva: las mutaciones del caso de uso no deben tocar el almacén hasta Update.
func (r *fakeFacturaRepo) GetByID(id string) (*entity.Factura, error) {
	f, ok := r.facturas[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFacturaRepo) GetLineasByFacturaID(facturaID string) ([]entity.LineaFactura, error) {
	return r.lineas[facturaID], nil
}

func (r *fakeFacturaRepo) GetDesglose(facturaID string) ([]fiscal.BasePorTipo, error) {
	return r.desglose[facturaID], nil
}

func (r *fakeFacturaRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Factura, error) {
	var out []*entity.Factura
	for _, f := range r.facturas {
		if f.EmpresaID == empresaID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFacturaRepo) ExisteNumero(empresaID, serie, numero string) (bool, error) {
	for _, f := range r.facturas {
		if f.EmpresaID == empresaID && f.Serie == serie && f.Numero == numero {
			return true, nil
		}
	}
	return false, nil
}

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func newFakeClienteRepo(clientes ...*entity.Cliente) *fakeClienteRepo {
	r := &fakeClienteRepo{clientes: make(map[string]*entity.Cliente)}
	for _, c := range clientes {
		r.clientes[c.ID] = c
	}
	return r
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }

func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeClienteRepo) GetByEmpresaAndNIF(empresaID, nif string) (*entity.Cliente, error) {
	for _, c := range r.clientes {
		if c.EmpresaID == empresaID && c.NIF == nif {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range r.clientes {
		if c.EmpresaID == empresaID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClienteRepo) Update(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }

func (r *fakeClienteRepo) Delete(id string) error { delete(r.clientes, id); return nil }

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin
// transacción real.
type fakeTxRunner struct {
	facturaRepo repository.FacturaRepository
	clienteRepo repository.ClienteRepository
}

func (t *fakeTxRunner) RunFacturacion(
	ctx context.Context,
	fn func(repository.FacturaRepository, repository.ClienteRepository) error,
) error {
	return fn(t.facturaRepo, t.clienteRepo)
}

var (
	_ repository.FacturaRepository = (*fakeFacturaRepo)(nil)
	_ repository.ClienteRepository = (*fakeClienteRepo)(nil)
	_ facturacion.FacturaTxRunner  = (*fakeTxRunner)(nil)
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	emEmpresaID = "emp-1"
	emClienteID = "cli-1"
	emFacturaID = "fac-1"
)

func clienteEmpresarioConNIF() *entity.Cliente {
	return &entity.Cliente{
		ID:        emClienteID,
		EmpresaID: emEmpresaID,
		Nombre:    "Distribuciones Ebro SL",
		Tipo:      entity.ClienteEmpresario,
		NIF:       "B13523592",
		Pais:      "ES",
	}
}

// facturaBorrador construye una factura en borrador con una línea de
// 2 uds x 100,00 € al 21 %. Los totales de cabecera se dejan a cero a
// propósito: la emisión debe recalcularlos desde las líneas.
func facturaBorrador() (*entity.Factura, []entity.LineaFactura) {
	f := &entity.Factura{
		ID:        emFacturaID,
		EmpresaID: emEmpresaID,
		ClienteID: emClienteID,
		Serie:     "A",
		Numero:    "0001",
		Tipo:      entity.FacturaOrdinaria,
		Estado:    entity.EstadoBorrador,
	}
	lineas := []entity.LineaFactura{
		{
			ID:             "lin-1",
			FacturaID:      emFacturaID,
			Orden:          1,
			Descripcion:    "Servicio de consultoría",
			Cantidad:       decimal.NewFromInt(2),
			PrecioUnitario: decimal.NewFromInt(100),
			TipoIVA:        21,
		},
	}
	return f, lineas
}

func buildEmitirUC(f *entity.Factura, lineas []entity.LineaFactura, cliente *entity.Cliente) (*facturacion.EmitirFacturaUseCase, *fakeFacturaRepo) {
	facturaRepo := newFakeFacturaRepo()
	if f != nil {
		facturaRepo.facturas[f.ID] = f
		facturaRepo.lineas[f.ID] = lineas
	}
	clienteRepo := newFakeClienteRepo()
	if cliente != nil {
		clienteRepo.clientes[cliente.ID] = cliente
	}
	tx := &fakeTxRunner{facturaRepo: facturaRepo, clienteRepo: clienteRepo}
	return facturacion.NewEmitirFacturaUseCase(tx, facturaRepo, clienteRepo), facturaRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La emisión de una factura válida recalcula los totales desde las líneas
// (ignorando lo guardado en el borrador) y congela el estado en emitida.
func TestEmitir_FacturaValida_RecalculaYEmite(t *testing.T) {
	f, lineas := facturaBorrador()
	uc, repo := buildEmitirUC(f, lineas, clienteEmpresarioConNIF())

	resp, errores, err := uc.Emitir(context.Background(), emEmpresaID, emFacturaID)
	require.NoError(t, err)
	require.Empty(t, errores)
	require.NotNil(t, resp)
	assert.Equal(t, entity.EstadoEmitida, resp.Estado)

	guardada := repo.facturas[emFacturaID]
	require.NotNil(t, guardada)
	assert.Equal(t, entity.EstadoEmitida, guardada.Estado)
	assert.Equal(t, "200.00", guardada.BaseImponibleTotal.StringFixed(2))
	assert.Equal(t, "42.00", guardada.CuotaIVATotal.StringFixed(2))
	assert.Equal(t, "242.00", guardada.TotalFactura.StringFixed(2))

	// El desglose por tipos se reescribe con el recálculo.
	desglose := repo.desglose[emFacturaID]
	require.Len(t, desglose, 1)
	assert.Equal(t, fiscal.TipoIVA(21), desglose[0].TipoIVA)
	assert.Equal(t, "200.00", desglose[0].Base.StringFixed(2))
	assert.Equal(t, "42.00", desglose[0].CuotaIVA.StringFixed(2))
}

// La retención IRPF de cabecera se aplica sobre la base total al emitir.
func TestEmitir_ConRetencionIRPF(t *testing.T) {
	f, lineas := facturaBorrador()
	ret := decimal.NewFromInt(15)
	f.PorcentajeRetencion = &ret
	uc, repo := buildEmitirUC(f, lineas, clienteEmpresarioConNIF())

	_, _, err := uc.Emitir(context.Background(), emEmpresaID, emFacturaID)
	require.NoError(t, err)

	guardada := repo.facturas[emFacturaID]
	require.NotNil(t, guardada.ImporteRetencion)
	assert.Equal(t, "30.00", guardada.ImporteRetencion.StringFixed(2))
	// 200 + 42 - 30
	assert.Equal(t, "212.00", guardada.TotalFactura.StringFixed(2))
}

// Una rectificativa sin referencias no puede emitirse: se devuelven los
// errores de validación y la factura sigue en borrador, sin tocar el almacén.
func TestEmitir_RectificativaSinReferencias_Bloqueada(t *testing.T) {
	f, lineas := facturaBorrador()
	f.Tipo = entity.FacturaRectificativa
	f.EsRectificativa = true
	uc, repo := buildEmitirUC(f, lineas, clienteEmpresarioConNIF())

	resp, errores, err := uc.Emitir(context.Background(), emEmpresaID, emFacturaID)
	require.ErrorIs(t, err, domain.ErrFacturaNoValida)
	assert.Nil(t, resp)
	assert.Contains(t, errores, aeat.ErrorFacturasRectificadas)

	assert.Equal(t, entity.EstadoBorrador, repo.facturas[emFacturaID].Estado,
		"la factura debe seguir en borrador tras una emisión rechazada")
	assert.Zero(t, repo.updateCalls, "no debe haberse ejecutado ningún Update")
}

// Cliente empresario sin NIF: el asesor de cumplimiento bloquea la emisión.
func TestEmitir_EmpresarioSinNIF_Bloqueada(t *testing.T) {
	f, lineas := facturaBorrador()
	cliente := clienteEmpresarioConNIF()
	cliente.NIF = ""
	uc, _ := buildEmitirUC(f, lineas, cliente)

	_, errores, err := uc.Emitir(context.Background(), emEmpresaID, emFacturaID)
	require.ErrorIs(t, err, domain.ErrFacturaNoValida)
	assert.Contains(t, errores, aeat.ErrorNIFEmpresario)
}

// Emitir dos veces: la segunda llamada debe fallar con ErrFacturaEmitida.
func TestEmitir_YaEmitida(t *testing.T) {
	f, lineas := facturaBorrador()
	uc, _ := buildEmitirUC(f, lineas, clienteEmpresarioConNIF())

	_, _, err := uc.Emitir(context.Background(), emEmpresaID, emFacturaID)
	require.NoError(t, err)

	_, _, err = uc.Emitir(context.Background(), emEmpresaID, emFacturaID)
	assert.ErrorIs(t, err, domain.ErrFacturaEmitida)
}

// Una factura de otra empresa no es visible ni emitible.
func TestEmitir_OtraEmpresa_Forbidden(t *testing.T) {
	f, lineas := facturaBorrador()
	uc, _ := buildEmitirUC(f, lineas, clienteEmpresarioConNIF())

	_, _, err := uc.Emitir(context.Background(), "otra-empresa", emFacturaID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEmitir_NoExiste(t *testing.T) {
	uc, _ := buildEmitirUC(nil, nil, nil)

	_, _, err := uc.Emitir(context.Background(), emEmpresaID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
