package notify

import (
	"bytes"
	"context"
	"net/http"

	"dostfrnd_server/config"
	"dostfrnd_server/schemas"

	jsoniter "github.com/json-iterator/go"
)

// GatewayPaymentCharger implements PaymentCharger against the configured
// http gateway; the gateway response is returned verbatim
type GatewayPaymentCharger struct{}

func (GatewayPaymentCharger) Charge(ctx context.Context, charge schemas.PaymentRequestSchema) (schemas.PaymentResultSchema, error) {

	result := schemas.PaymentResultSchema{}

	body, err := jsoniter.Marshal(charge)
	if err != nil {
		return result, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.Config.Payment.URL, bytes.NewReader(body))
	if err != nil {
		return result, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.Config.Payment.Key)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return result, err
	}
	defer res.Body.Close()

	if err = jsoniter.NewDecoder(res.Body).Decode(&result.Result); err != nil {
		return result, err
	}
	return result, nil
}
