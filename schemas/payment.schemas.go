package schemas

// PaymentRequestSchema struct; passed through to the gateway untouched
type PaymentRequestSchema struct {
	Amount      int64  `validate:"required,gt=0"`
	Currency    string `validate:"required,len=3"`
	Source      string `validate:"required"`
	Description string `validate:"max=500"`
}

// PaymentResultSchema carries the gateway response verbatim
type PaymentResultSchema struct {
	Result map[string]interface{}
}
