package dto

// ClientRequest body pour POST/PUT /api/clients.
type ClientRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Code    string `json:"code" validate:"required,min=1,max=50"` // numéro de patente
	ICE     string `json:"ice,omitempty" validate:"omitempty,max=20"`
	Address string `json:"address,omitempty" validate:"omitempty,max=300"`
}

// ClientResponse client dans les réponses.
type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	ICE     string `json:"ice,omitempty"`
	Address string `json:"address,omitempty"`
}
