package request

type OpenCashSessionRequest struct {
	StartAmount string `json:"start_amount" binding:"required"`
}

type CloseCashSessionRequest struct {
	CountedAmount string `json:"counted_amount" binding:"required"`
}
