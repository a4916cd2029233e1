package dto

import "github.com/shopspring/decimal"

// ReporteResponse respuesta de GET /generar-reporte. Las cantidades de pizzas
// van como números; los montos como strings con dos decimales, redondeados
// solo en esta frontera.
type ReporteResponse struct {
	Success                 bool    `json:"success"`
	Nombre                  string  `json:"nombre"`
	TotalPizzasAsignadas    float64 `json:"totalPizzasAsignadas"`
	TotalPizzasVendidas     float64 `json:"totalPizzasVendidas"`
	TotalVentaPagada        string  `json:"totalVentaPagada"`
	TotalVentaPendiente     string  `json:"totalVentaPendiente"`
	TotalComisionesGanadas  string  `json:"totalComisionesGanadas"`
	TotalComisionesPagadas  string  `json:"totalComisionesPagadas"`
	ComisionPendienteAPagar string  `json:"comisionPendienteAPagar"`
}

// PagarComisionRequest body para POST /pagar-comision. El nombre lo envía el
// cajero tal cual; no se re-resuelve contra el directorio de vendedores.
type PagarComisionRequest struct {
	UID    string          `json:"uid"`
	Monto  decimal.Decimal `json:"montoPagado"`
	Nombre string          `json:"nombre"`
}
