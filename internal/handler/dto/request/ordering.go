package request

type UtteranceRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

type PaymentRequest struct {
	Method string `json:"method" binding:"required,oneof=CASH CARD MOBILE cash card mobile"`
}

type ResizeRequest struct {
	Size string `json:"size" binding:"required,max=50"`
}
