package stripe

import (
	"context"
	"fmt"

	stripelib "github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"

	"booklend-backend/internal/domains/payment/processor"
)

// Client implements processor.Processor on Stripe Checkout.
type Client struct {
	api        *stripeclient.API
	siteDomain string
}

func NewClient(secret, siteDomain string) *Client {
	api := &stripeclient.API{}
	api.Init(secret, nil)
	return &Client{api: api, siteDomain: siteDomain}
}

func (c *Client) CreateCheckoutSession(ctx context.Context, req processor.CheckoutRequest) (*processor.CheckoutSession, error) {
	params := &stripelib.CheckoutSessionParams{
		Mode: stripelib.String(string(stripelib.CheckoutSessionModePayment)),
		LineItems: []*stripelib.CheckoutSessionLineItemParams{
			{
				PriceData: &stripelib.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripelib.String(req.Currency),
					UnitAmount: stripelib.Int64(req.UnitAmount),
					ProductData: &stripelib.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripelib.String(req.BookName),
					},
				},
				Quantity: stripelib.Int64(1),
			},
		},
		CustomerEmail: stripelib.String(req.CustomerEmail),
		SuccessURL:    stripelib.String(c.siteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripelib.String(c.siteDomain + "/dashboard/payment-cancelled"),
	}
	params.Context = ctx
	params.AddMetadata("name", req.BookName)
	params.AddMetadata("orderId", req.OrderID)

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &processor.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (c *Client) GetSession(ctx context.Context, id string) (*processor.SessionResult, error) {
	params := &stripelib.CheckoutSessionParams{}
	params.Context = ctx

	session, err := c.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	result := &processor.SessionResult{
		ID:            session.ID,
		Paid:          session.PaymentStatus == stripelib.CheckoutSessionPaymentStatusPaid,
		AmountTotal:   session.AmountTotal,
		Currency:      string(session.Currency),
		CustomerEmail: session.CustomerEmail,
		Metadata:      session.Metadata,
	}
	if session.PaymentIntent != nil {
		result.TransactionID = session.PaymentIntent.ID
	}
	return result, nil
}
