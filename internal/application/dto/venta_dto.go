package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PagoFlag acepta el campo entregoPago tanto como booleano (true/false) como
// string ("SI"/"NO", sin distinguir mayúsculas). Se normaliza siempre a los
// literales "SI"/"NO" que guarda la hoja de Ventas.
type PagoFlag string

// UnmarshalJSON implementa json.Unmarshaler.
func (p *PagoFlag) UnmarshalJSON(b []byte) error {
	var como bool
	if err := json.Unmarshal(b, &como); err == nil {
		if como {
			*p = "SI"
		} else {
			*p = "NO"
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = PagoFlag(strings.ToUpper(strings.TrimSpace(s)))
		return nil
	}
	return fmt.Errorf("entregoPago debe ser booleano o \"SI\"/\"NO\"")
}

// Valido reporta si el valor normalizado es uno de los dos literales permitidos.
func (p PagoFlag) Valido() bool {
	return p == "SI" || p == "NO"
}

// RegistrarVentaRequest body para POST /registrar-venta.
type RegistrarVentaRequest struct {
	UID         string          `json:"uid"`
	Pizzas      decimal.Decimal `json:"pizzasVendidas"`
	EntregoPago PagoFlag        `json:"entregoPago"`
}

// RegistrarVentaResponse respuesta de una venta aceptada, con los montos
// calculados para mostrar en el punto de venta.
type RegistrarVentaResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	VentaTotal     string `json:"ventaTotal"`
	ComisionGanada string `json:"comisionGanada"`
}
