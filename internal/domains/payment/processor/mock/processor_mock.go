package mock

import (
	"context"
	"fmt"
	"sync"

	"booklend-backend/internal/domains/payment/processor"
)

// Processor is an in-memory payment processor for tests and local runs.
// MarkPaid simulates the customer completing checkout.
type Processor struct {
	mu       sync.Mutex
	seq      int
	sessions map[string]*processor.SessionResult

	FailCreate bool
	FailGet    bool
}

func NewProcessor() *Processor {
	return &Processor{sessions: map[string]*processor.SessionResult{}}
}

func (p *Processor) CreateCheckoutSession(_ context.Context, req processor.CheckoutRequest) (*processor.CheckoutSession, error) {
	if p.FailCreate {
		return nil, fmt.Errorf("mock processor: create failed")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	id := fmt.Sprintf("cs_mock_%d", p.seq)
	p.sessions[id] = &processor.SessionResult{
		ID:            id,
		TransactionID: fmt.Sprintf("pi_mock_%d", p.seq),
		Paid:          false,
		AmountTotal:   req.UnitAmount,
		Currency:      req.Currency,
		CustomerEmail: req.CustomerEmail,
		Metadata:      map[string]string{"name": req.BookName, "orderId": req.OrderID},
	}
	return &processor.CheckoutSession{
		ID:  id,
		URL: "https://mock-checkout.example.com/pay/" + id,
	}, nil
}

func (p *Processor) GetSession(_ context.Context, id string) (*processor.SessionResult, error) {
	if p.FailGet {
		return nil, fmt.Errorf("mock processor: retrieve failed")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	session, ok := p.sessions[id]
	if !ok {
		return nil, fmt.Errorf("mock processor: unknown session %s", id)
	}
	copied := *session
	return &copied, nil
}

// MarkPaid flips the session into the paid state.
func (p *Processor) MarkPaid(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if session, ok := p.sessions[id]; ok {
		session.Paid = true
	}
}
