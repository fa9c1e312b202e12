package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/auth"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/facturacion"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/usecase"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmpresaUC     *usecase.EmpresaUseCase
	ClienteUC     *facturacion.ClienteUseCase
	CrearFactura  *facturacion.CrearFacturaUseCase
	EmitirFactura *facturacion.EmitirFacturaUseCase
	Preview       *facturacion.PreviewUseCase
	FacturaPDF    *facturacion.PDFUseCase
	Facturae      *facturacion.FacturaeUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Empresas (público: alta inicial y consulta)
	empresas := api.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/:id", empresaHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido; cualquier rol autenticado)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleContable), clienteHandler.Delete)

	// Facturas (protegido)
	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.CrearFactura, deps.EmitirFactura, deps.Preview, deps.FacturaPDF, deps.Facturae)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/", facturaHandler.List)
	facturas.Post("/calcular", facturaHandler.Calcular)
	facturas.Get("/:id", facturaHandler.GetByID)
	// Emitir es definitivo: solo admin y contable
	facturas.Post("/:id/emitir", RequireRole(entity.RoleAdmin, entity.RoleContable), facturaHandler.Emitir)
	facturas.Get("/:id/pdf", facturaHandler.PDF)
	facturas.Get("/:id/facturae", facturaHandler.Facturae)
}
