package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booklend-backend/internal/domains/payment"
	"booklend-backend/internal/domains/payment/processor/mock"
)

type fakePaymentRepo struct {
	byTransaction map[string]*payment.Payment
	confirmCalls  int
	paidOrders    []primitive.ObjectID
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{byTransaction: map[string]*payment.Payment{}}
}

func (r *fakePaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*payment.Payment, error) {
	if p, ok := r.byTransaction[transactionID]; ok {
		return p, nil
	}
	return nil, payment.ErrPaymentNotFound
}

func (r *fakePaymentRepo) Confirm(_ context.Context, orderID primitive.ObjectID, p *payment.Payment) (*payment.Payment, error) {
	r.confirmCalls++
	if _, ok := r.byTransaction[p.TransactionID]; ok {
		return nil, payment.ErrDuplicateTransaction
	}
	p.ID = primitive.NewObjectID()
	r.byTransaction[p.TransactionID] = p
	r.paidOrders = append(r.paidOrders, orderID)
	return p, nil
}

func (r *fakePaymentRepo) ListByCustomer(_ context.Context, email string) ([]payment.Payment, error) {
	out := []payment.Payment{}
	for _, p := range r.byTransaction {
		if p.CustomerEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func startSession(t *testing.T, svc payment.Service, proc *mock.Processor, orderID primitive.ObjectID) string {
	t.Helper()
	url, err := svc.CreateCheckoutSession(context.Background(), "reader@example.com", payment.CheckoutRequest{
		OrderID:  orderID.Hex(),
		BookName: "Dune",
		Price:    12.5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, url)

	// The mock embeds the session id in the redirect URL.
	return url[len("https://mock-checkout.example.com/pay/"):]
}

func TestCreateCheckoutSessionRejectsMalformedOrderID(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo(), mock.NewProcessor(), "usd")

	_, err := svc.CreateCheckoutSession(context.Background(), "reader@example.com", payment.CheckoutRequest{
		OrderID: "not-a-hex-id",
	})
	assert.ErrorIs(t, err, payment.ErrInvalidOrderID)
}

func TestCreateCheckoutSessionConvertsPriceToMinorUnits(t *testing.T) {
	proc := mock.NewProcessor()
	svc := NewPaymentService(newFakePaymentRepo(), proc, "usd")

	sessionID := startSession(t, svc, proc, primitive.NewObjectID())

	session, err := proc.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), session.AmountTotal)
	assert.Equal(t, "usd", session.Currency)
	assert.Equal(t, "reader@example.com", session.CustomerEmail)
}

func TestMinorUnitsTruncates(t *testing.T) {
	assert.Equal(t, int64(1250), minorUnits(12.5))
	assert.Equal(t, int64(999), minorUnits(9.999))
	assert.Equal(t, int64(0), minorUnits(0.001))
}

func TestConfirmPaymentRecordsLedgerEntryAndMarksOrderPaid(t *testing.T) {
	repo := newFakePaymentRepo()
	proc := mock.NewProcessor()
	svc := NewPaymentService(repo, proc, "usd")
	orderID := primitive.NewObjectID()

	sessionID := startSession(t, svc, proc, orderID)
	proc.MarkPaid(sessionID)

	result, err := svc.ConfirmPayment(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomePaid, result.Outcome)
	require.NotNil(t, result.Payment)
	assert.Equal(t, orderID, result.Payment.OrderID)
	assert.Equal(t, 12.5, result.Payment.Amount)
	assert.Equal(t, "Dune", result.Payment.BookName)
	assert.Equal(t, []primitive.ObjectID{orderID}, repo.paidOrders)
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	repo := newFakePaymentRepo()
	proc := mock.NewProcessor()
	svc := NewPaymentService(repo, proc, "usd")

	sessionID := startSession(t, svc, proc, primitive.NewObjectID())
	proc.MarkPaid(sessionID)

	first, err := svc.ConfirmPayment(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, payment.OutcomePaid, first.Outcome)

	second, err := svc.ConfirmPayment(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomeAlreadyPaid, second.Outcome)
	assert.Equal(t, first.Payment.ID, second.Payment.ID)

	// The second confirm short-circuits before touching the ledger.
	assert.Equal(t, 1, repo.confirmCalls)
	assert.Len(t, repo.paidOrders, 1)
}

func TestConfirmPaymentUnpaidSessionWritesNothing(t *testing.T) {
	repo := newFakePaymentRepo()
	proc := mock.NewProcessor()
	svc := NewPaymentService(repo, proc, "usd")

	sessionID := startSession(t, svc, proc, primitive.NewObjectID())

	result, err := svc.ConfirmPayment(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomeNotPaid, result.Outcome)
	assert.Nil(t, result.Payment)
	assert.Zero(t, repo.confirmCalls)
	assert.Empty(t, repo.paidOrders)
}

func TestConfirmPaymentRequiresSessionID(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo(), mock.NewProcessor(), "usd")

	_, err := svc.ConfirmPayment(context.Background(), "")
	assert.ErrorIs(t, err, payment.ErrMissingSessionID)
}

func TestConfirmPaymentDuplicateKeyRaceReportsAlreadyPaid(t *testing.T) {
	repo := newFakePaymentRepo()
	proc := mock.NewProcessor()
	svc := NewPaymentService(repo, proc, "usd")

	sessionID := startSession(t, svc, proc, primitive.NewObjectID())
	proc.MarkPaid(sessionID)

	// Simulate a concurrent confirm that won the insert between our ledger
	// lookup and our Confirm call.
	session, err := proc.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	winner := &payment.Payment{
		ID:            primitive.NewObjectID(),
		TransactionID: session.TransactionID,
		CustomerEmail: session.CustomerEmail,
	}

	raceRepo := &racingRepo{fakePaymentRepo: repo, winner: winner}
	racedSvc := NewPaymentService(raceRepo, proc, "usd")

	result, err := racedSvc.ConfirmPayment(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomeAlreadyPaid, result.Outcome)
	assert.Equal(t, winner.ID, result.Payment.ID)
}

// racingRepo reports a miss on the first lookup, then lets the duplicate
// winner surface through Confirm and the retry lookup.
type racingRepo struct {
	*fakePaymentRepo
	winner  *payment.Payment
	lookups int
}

func (r *racingRepo) FindByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, payment.ErrPaymentNotFound
	}
	if transactionID == r.winner.TransactionID {
		return r.winner, nil
	}
	return r.fakePaymentRepo.FindByTransactionID(ctx, transactionID)
}

func (r *racingRepo) Confirm(context.Context, primitive.ObjectID, *payment.Payment) (*payment.Payment, error) {
	return nil, payment.ErrDuplicateTransaction
}
