package request

import (
	"caja-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type StartCoworkingSessionRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

type AddExtraRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  *int32    `json:"quantity" binding:"omitempty,min=1"`
}

// Quantity defaults to a single unit when omitted.
func (r *AddExtraRequest) QuantityValue() int32 {
	return patch.Coalesce(r.Quantity, 1)
}

type FinishCoworkingSessionRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=efectivo tarjeta"`
}
