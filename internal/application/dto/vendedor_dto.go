package dto

import "github.com/shopspring/decimal"

// VerificarRFIDRequest body para POST /verificar-rfid.
type VerificarRFIDRequest struct {
	RFIDUID string `json:"rfid_uid"`
}

// VendedorDTO datos del vendedor para el lector RFID.
type VendedorDTO struct {
	Nombre   string `json:"nombre"`
	IFE      string `json:"ife"`
	Telefono string `json:"telefono"`
	Lider    string `json:"lider"`
	Comision string `json:"comision"`
}

// VerificarRFIDResponse respuesta de la verificación.
type VerificarRFIDResponse struct {
	Success  bool        `json:"success"`
	Vendedor VendedorDTO `json:"vendedor"`
}

// RegistrarVendedorRequest body para POST /registrar-vendedor.
// uid, nombre e ife son obligatorios; el resto es opcional.
type RegistrarVendedorRequest struct {
	UID      string          `json:"uid"`
	Nombre   string          `json:"nombre"`
	IFE      string          `json:"ife"`
	Telefono string          `json:"telefono"`
	Lider    string          `json:"lider"`
	Comision decimal.Decimal `json:"comision"` // porcentaje 0–100
}
