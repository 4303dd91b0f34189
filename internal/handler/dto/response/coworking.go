package response

import (
	"time"

	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CoworkingExtraResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
}

type CoworkingSessionResponse struct {
	ID         uuid.UUID                `json:"id"`
	ClientName string                   `json:"client_name"`
	StartTime  time.Time                `json:"start_time"`
	EndTime    *time.Time               `json:"end_time,omitempty"`
	Status     string                   `json:"status"`
	Extras     []CoworkingExtraResponse `json:"extras"`
	Total      decimal.Decimal          `json:"total"`
}

type CoworkingQuoteResponse struct {
	SessionID  uuid.UUID       `json:"session_id"`
	Minutes    int64           `json:"minutes"`
	TimeCost   decimal.Decimal `json:"time_cost"`
	ExtrasCost decimal.Decimal `json:"extras_cost"`
	Total      decimal.Decimal `json:"total"`
}

func FromCoworkingSessionRM(rm *readmodel.CoworkingSessionRM) *CoworkingSessionResponse {
	var resp CoworkingSessionResponse
	mustCopy(&resp, rm)
	if resp.Extras == nil {
		resp.Extras = []CoworkingExtraResponse{}
	}
	return &resp
}

func FromCoworkingSessionRMs(rms []*readmodel.CoworkingSessionRM) []*CoworkingSessionResponse {
	result := make([]*CoworkingSessionResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromCoworkingSessionRM(rm)
	}
	return result
}

func FromCoworkingQuoteRM(rm *readmodel.CoworkingQuoteRM) *CoworkingQuoteResponse {
	var resp CoworkingQuoteResponse
	mustCopy(&resp, rm)
	return &resp
}
