package dto

// Toda respuesta de la API lleva success más un payload o un error; los
// clientes de punto de venta deciden por ese campo.

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MensajeResponse cuerpo de éxito con mensaje para las operaciones de escritura.
type MensajeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error construye un ErrorResponse.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// Mensaje construye un MensajeResponse.
func Mensaje(msg string) MensajeResponse {
	return MensajeResponse{Success: true, Message: msg}
}
