package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OKResponse bandera de éxito simple que espera el cliente web:
// {ok:true|false}.
type OKResponse struct {
	OK bool `json:"ok"`
}
