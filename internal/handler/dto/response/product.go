package response

import (
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int32           `json:"stock"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
}

type ImportProductsResponse struct {
	Imported int `json:"imported"`
}

func FromProductRM(rm *readmodel.ProductRM) *ProductResponse {
	var resp ProductResponse
	mustCopy(&resp, rm)
	return &resp
}

func FromProductRMs(rms []*readmodel.ProductRM) []*ProductResponse {
	result := make([]*ProductResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromProductRM(rm)
	}
	return result
}
