// Package rfid normaliza identificadores de tarjetas RFID.
//
// El lector USB de escritorio escribe el UID en formato decimal de 10 dígitos
// (little-endian), mientras que los lectores NFC de celular entregan el UID en
// hexadecimal big-endian. ConvertirUID traduce del segundo formato al primero,
// que es el que se registra en la hoja de Vendedores.
package rfid

import (
	"fmt"
	"strconv"
)

// EsHex reporta si s está compuesto solo por dígitos hexadecimales y tiene
// una longitud par entre 6 y 16 caracteres (3 a 8 bytes).
func EsHex(s string) bool {
	if len(s) < 6 || len(s) > 16 || len(s)%2 != 0 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ConvertirUID convierte un UID hex big-endian (ej. "128F8005") al formato
// decimal little-endian de 10 dígitos del lector USB (ej. "0092311314").
// Invierte el orden de los bytes, interpreta el resultado como entero y lo
// rellena con ceros a la izquierda.
func ConvertirUID(uidHex string) (string, error) {
	if !EsHex(uidHex) {
		return "", fmt.Errorf("uid %q no es hexadecimal de 3 a 8 bytes", uidHex)
	}

	invertido := make([]byte, 0, len(uidHex))
	for i := len(uidHex) - 2; i >= 0; i -= 2 {
		invertido = append(invertido, uidHex[i], uidHex[i+1])
	}

	n, err := strconv.ParseUint(string(invertido), 16, 64)
	if err != nil {
		return "", fmt.Errorf("parsear uid %q: %w", uidHex, err)
	}
	return fmt.Sprintf("%010d", n), nil
}
