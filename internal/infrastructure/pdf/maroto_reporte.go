// Package pdf genera el estado de cuenta de un vendedor con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Pizzería + ESTADO DE CUENTA + fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENDEDOR: Nombre + UID + IFE + Líder + % comisión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: concepto | valor (pizzas y montos agregados)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALDO: COMISIÓN PENDIENTE A PAGAR                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Pizzeria-api/internal/application/comisiones"
	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/ledger"
)

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ comisiones.ReportePDFGenerator = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa comisiones.ReportePDFGenerator usando Maroto v2.
type MarotoReporteGenerator struct {
	nombreNegocio string
}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator(nombreNegocio string) *MarotoReporteGenerator {
	return &MarotoReporteGenerator{nombreNegocio: nombreNegocio}
}

// GenerarReportePDF genera el PDF y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReportePDF(
	_ context.Context,
	vendedor *entity.Vendedor,
	resumen ledger.Resumen,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta de vendedor", true).
		WithAuthor(g.nombreNegocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.nombreNegocio))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vendedorRow(vendedor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(conceptoRow("Pizzas asignadas", resumen.PizzasAsignadas.String()))
	m.AddRows(conceptoRow("Pizzas vendidas", resumen.PizzasVendidas.String()))
	m.AddRows(conceptoRow("Ventas con pago recibido", "$"+ledger.Fijo2(resumen.VentaPagada)))
	m.AddRows(conceptoRow("Ventas con pago pendiente", "$"+ledger.Fijo2(resumen.VentaPendiente)))
	m.AddRows(conceptoRow("Comisiones ganadas", "$"+ledger.Fijo2(resumen.ComisionesGanadas)))
	m.AddRows(conceptoRow("Comisiones pagadas", "$"+ledger.Fijo2(resumen.ComisionesPagadas)))

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(saldoRow(resumen))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y título + fecha (der).
func headerRow(nombreNegocio string) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nombreNegocio, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA DE VENDEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// vendedorRow: identificación del vendedor.
func vendedorRow(v *entity.Vendedor) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(v.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 1,
			}),
			text.New(fmt.Sprintf("UID: %s   |   IFE: %s   |   Líder: %s   |   Comisión: %s%%",
				v.UID,
				nonEmpty(v.IFE, "—"),
				nonEmpty(v.Lider, "—"),
				v.Comision.String(),
			), props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	)
}

// conceptoRow: una línea concepto/valor de la tabla de agregados.
func conceptoRow(concepto, valor string) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(concepto, props.Text{
			Size: 9, Align: align.Left, Top: 1, Left: 2,
		})),
		col.New(4).Add(text.New(valor, props.Text{
			Size: 9, Align: align.Right, Top: 1, Right: 2,
		})),
	)
}

// saldoRow: saldo de comisión pendiente, destacado.
func saldoRow(r ledger.Resumen) core.Row {
	return row.New(12).Add(
		col.New(8).Add(text.New("COMISIÓN PENDIENTE A PAGAR:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Left,
			Color: colorPrimary, Top: 2, Left: 2,
		})),
		col.New(4).Add(text.New("$"+ledger.Fijo2(r.ComisionPendiente), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
