package request

import (
	"caja-api/internal/usecase"

	"github.com/google/uuid"
)

type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	ClientName    *string               `json:"client_name"`
	ServiceType   string                `json:"service_type" binding:"required,oneof=mesa para_llevar coworking"`
	PaymentMethod string                `json:"payment_method" binding:"required,oneof=efectivo tarjeta"`
}

func (r *CheckoutRequest) ToParams() usecase.CheckoutParams {
	items := make([]usecase.CheckoutItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = usecase.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	return usecase.CheckoutParams{
		Items:         items,
		ClientName:    r.ClientName,
		ServiceType:   r.ServiceType,
		PaymentMethod: r.PaymentMethod,
	}
}
