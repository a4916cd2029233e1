package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pizzeria-api/internal/application/comisiones"
	"github.com/jhoicas/Pizzeria-api/internal/application/inventario"
	"github.com/jhoicas/Pizzeria-api/internal/application/vendedores"
	"github.com/jhoicas/Pizzeria-api/internal/application/ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	VendedoresUC *vendedores.UseCase
	InventarioUC *inventario.UseCase
	VentasUC     *ventas.UseCase
	ComisionesUC *comisiones.UseCase
}

// Router registra las rutas de la API. Las rutas viven en la raíz (sin
// prefijo /api) porque los lectores RFID de la operación ya las tienen
// grabadas así.
func Router(app *fiber.App, deps RouterDeps) {
	vendedorHandler := NewVendedorHandler(deps.VendedoresUC)
	app.Post("/verificar-rfid", vendedorHandler.VerificarRFID)
	app.Post("/registrar-vendedor", vendedorHandler.Registrar)

	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	app.Post("/asignar-pizzas", inventarioHandler.AsignarPizzas)
	app.Post("/registrar-devolucion", inventarioHandler.RegistrarDevolucion)

	ventaHandler := NewVentaHandler(deps.VentasUC)
	app.Post("/registrar-venta", ventaHandler.Registrar)

	comisionHandler := NewComisionHandler(deps.ComisionesUC)
	app.Get("/generar-reporte", comisionHandler.GenerarReporte)
	app.Get("/generar-reporte-pdf", comisionHandler.GenerarReportePDF)
	app.Post("/pagar-comision", comisionHandler.PagarComision)
}
