package dto

import "github.com/go-playground/validator/v10"

// validate instance partagée (thread-safe, cache de métadonnées).
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate applique les tags `validate` d'un DTO de requête.
func Validate(in any) error {
	return validate.Struct(in)
}

// ErrorResponse corps d'erreur HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
