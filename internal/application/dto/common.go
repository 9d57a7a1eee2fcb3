package dto

// Response es el sobre común de la API: {message, data?, error?}. Fields se
// usa solo en errores de validación para reportar el mapa campo -> mensaje.
type Response struct {
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
