package dto

// EstadoRequest is the body of every PATCH /:id/estado endpoint. Membership in
// the resource's allowed set is checked by the service, not here.
type EstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

type MensajeResponse struct {
	Message string `json:"message"`
}

// CascadaResponse reports how many children a bulk estado change touched.
type CascadaResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
