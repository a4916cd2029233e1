package rfid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pizzeria-api/pkg/rfid"
)

// Vector de referencia del lector: "128F8005" (hex big-endian del celular)
// equivale a "0092311314" (decimal little-endian del lector USB).
func TestConvertirUID(t *testing.T) {
	casos := []struct {
		hex     string
		decimal string
	}{
		{"128F8005", "0092311314"},
		{"01020304", "0067305985"}, // 0x04030201
		{"FFFFFF", "0016777215"},   // 3 bytes
	}
	for _, c := range casos {
		got, err := rfid.ConvertirUID(c.hex)
		require.NoError(t, err, "uid %s", c.hex)
		assert.Equal(t, c.decimal, got, "uid %s", c.hex)
	}
}

func TestConvertirUID_Invalido(t *testing.T) {
	for _, uid := range []string{"", "12", "XYZ12345", "128F800", "0011223344556677889900"} {
		_, err := rfid.ConvertirUID(uid)
		assert.Error(t, err, "uid %q debería rechazarse", uid)
	}
}

func TestEsHex(t *testing.T) {
	assert.True(t, rfid.EsHex("128F8005"))
	assert.True(t, rfid.EsHex("aabbcc"))
	assert.False(t, rfid.EsHex("0092311314X"))
	assert.False(t, rfid.EsHex("128F800")) // longitud impar
	assert.False(t, rfid.EsHex("12"))      // muy corto
}
