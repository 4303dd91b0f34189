package response

import (
	"time"

	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ProductID *uuid.UUID      `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	Date          time.Time           `json:"date"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	ClientName    *string             `json:"client_name,omitempty"`
	ServiceType   string              `json:"service_type"`
	PaymentMethod string              `json:"payment_method"`
}

func FromOrderRM(rm *readmodel.OrderRM) *OrderResponse {
	var resp OrderResponse
	mustCopy(&resp, rm)
	if resp.Items == nil {
		resp.Items = []OrderItemResponse{}
	}
	return &resp
}

func FromOrderRMs(rms []*readmodel.OrderRM) []*OrderResponse {
	result := make([]*OrderResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromOrderRM(rm)
	}
	return result
}
