package serenioapi

import (
	"context"
	"net/http"
)

// CreatePaymentIntent создает платежное намерение на стороне backend
// Возвращаемые clientSecret и paymentIntentId непрозрачны для клиента:
// подтверждение платежа выполняет Stripe
func (c *Client) CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResponse, error) {
	c.log.Info("CreatePaymentIntent: amount=%d %s", req.Amount, req.Currency)

	var resp PaymentIntentResponse
	err := c.do(ctx, call{
		endpoint:      "payment_intent",
		method:        http.MethodPost,
		path:          "/api/payment/create-payment-intent",
		body:          req,
		out:           &resp,
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
