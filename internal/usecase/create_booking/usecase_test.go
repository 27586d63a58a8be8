package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcwh/WRS-ReservationService/internal/domain"
	"github.com/dmcwh/WRS-ReservationService/pkg/types"
)

// fakeLedger имитирует удалённый ledger вместе с кэшем поверх него:
// Get собирает снапшот из текущего содержимого, ReplaceBookings
// перезаписывает документ целиком.
type fakeLedger struct {
	mu          sync.Mutex
	bookings    []domain.Booking
	getErr      error
	writeErr    error
	invalidated int
	writes      int
}

func (l *fakeLedger) Get(ctx context.Context) (*domain.LedgerSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.getErr != nil {
		return nil, l.getErr
	}

	snap := &domain.LedgerSnapshot{
		Bookings: append([]domain.Booking(nil), l.bookings...),
		LoadedAt: time.Now(),
	}
	return snap, nil
}

func (l *fakeLedger) Invalidate() {
	l.mu.Lock()
	l.invalidated++
	l.mu.Unlock()
}

func (l *fakeLedger) ReplaceBookings(ctx context.Context, bookings []domain.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writes++
	if l.writeErr != nil {
		return l.writeErr
	}
	l.bookings = append([]domain.Booking(nil), bookings...)
	return nil
}

func (l *fakeLedger) invalidateCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.invalidated
}

type fakeNotifier struct {
	mu    sync.Mutex
	err   error
	sent  int
	to    string
	cc    []string
	lastB domain.Booking
}

func (n *fakeNotifier) SendBookingConfirmation(ctx context.Context, to string, cc []string, booking domain.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent++
	n.to = to
	n.cc = cc
	n.lastB = booking
	return nil
}

type fakeAuditLog struct {
	mu      sync.Mutex
	entries []*domain.CommitAuditEntry
	err     error
}

func (a *fakeAuditLog) Create(ctx context.Context, entry *domain.CommitAuditEntry) (*domain.CommitAuditEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return nil, a.err
	}
	a.entries = append(a.entries, entry)
	return entry, nil
}

func (a *fakeAuditLog) outcomes() []domain.CommitOutcome {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.CommitOutcome, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Outcome)
	}
	return out
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var (
	// 2026-03-04 - среда
	now       = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(ledger *fakeLedger, audit *fakeAuditLog, notifier *fakeNotifier) *UseCase {
	var auditLog AuditLog
	if audit != nil {
		auditLog = audit
	}
	var n Notifier
	if notifier != nil {
		n = notifier
	}

	uc := NewUseCase(ledger, ledger, auditLog, n, nil, 30, noopLogger{})
	return uc.WithTimeProvider(&fakeClock{now: now})
}

func validRequest() *Request {
	return &Request{
		SupplierID:     "prov-a",
		Date:           wednesday,
		Slot:           "09:00",
		PackageCount:   3,
		PurchaseOrders: []string{"OC-1001", "OC-1002"},
		SupplierEmail:  "prov-a@example.com",
		CCEmails:       []string{"compras@example.com"},
	}
}

func TestExecute_Success(t *testing.T) {
	ledger := &fakeLedger{}
	audit := &fakeAuditLog{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(ledger, audit, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "prov-a", resp.SupplierID)
	assert.Equal(t, types.TimeString("09:00"), resp.Slot)
	assert.True(t, resp.NotificationSent)

	require.Len(t, ledger.bookings, 1)
	assert.Equal(t, "prov-a", ledger.bookings[0].SupplierID)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, domain.OutcomeCommitted, audit.entries[0].Outcome)

	assert.Equal(t, "prov-a@example.com", notifier.to)
	assert.Equal(t, []string{"compras@example.com"}, notifier.cc)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "zero package count",
			mutate:  func(r *Request) { r.PackageCount = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative package count",
			mutate:  func(r *Request) { r.PackageCount = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty purchase orders",
			mutate:  func(r *Request) { r.PurchaseOrders = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "whitespace-only purchase orders",
			mutate:  func(r *Request) { r.PurchaseOrders = []string{"  ", "\t"} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "blank supplier",
			mutate:  func(r *Request) { r.SupplierID = "  " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "slot off the calendar grid",
			mutate:  func(r *Request) { r.Slot = "09:15" },
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "slot past closing time",
			mutate:  func(r *Request) { r.Slot = "16:00" },
			wantErr: ErrInvalidSlot,
		},
		{
			name: "valid weekday slot on Sunday",
			mutate: func(r *Request) {
				r.Date = time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "date in the past",
			mutate:  func(r *Request) { r.Date = now.AddDate(0, 0, -3); r.Slot = "09:00" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "date beyond booking horizon",
			mutate:  func(r *Request) { r.Date = time.Date(2026, time.April, 8, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrDateTooFarInFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &fakeLedger{}
			uc := newTestUseCase(ledger, nil, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, ledger.writes, "validation failure must not touch the ledger")
		})
	}
}

func TestExecute_TrimsPurchaseOrders(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newTestUseCase(ledger, nil, nil)

	req := validRequest()
	req.PurchaseOrders = []string{" OC-1001 ", "", "OC-1002"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"OC-1001", "OC-1002"}, resp.PurchaseOrders)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	ledger := &fakeLedger{bookings: []domain.Booking{
		{Date: wednesday, Slot: "09:00", SupplierID: "prov-b"},
	}}
	audit := &fakeAuditLog{}
	uc := newTestUseCase(ledger, audit, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
	assert.Zero(t, ledger.writes, "conflict must be detected before the write")
	assert.Equal(t, []domain.CommitOutcome{domain.OutcomeSlotConflict}, audit.outcomes())
}

func TestExecute_SameSupplierCannotDoubleBook(t *testing.T) {
	ledger := &fakeLedger{bookings: []domain.Booking{
		{Date: wednesday, Slot: "09:00", SupplierID: "prov-a"},
	}}
	uc := newTestUseCase(ledger, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
}

func TestExecute_LedgerUnavailable(t *testing.T) {
	ledger := &fakeLedger{getErr: errors.New("store down")}
	uc := newTestUseCase(ledger, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Zero(t, ledger.writes)
}

func TestExecute_WriteFailure(t *testing.T) {
	ledger := &fakeLedger{writeErr: errors.New("write timeout")}
	audit := &fakeAuditLog{}
	uc := newTestUseCase(ledger, audit, nil)

	before := ledger.invalidateCount()
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCommitFailed)
	assert.Greater(t, ledger.invalidateCount(), before+1,
		"cache must be invalidated after an ambiguous write failure")
	assert.Equal(t, []domain.CommitOutcome{domain.OutcomeCommitFailed}, audit.outcomes())
	require.Len(t, audit.entries, 1)
	require.NotNil(t, audit.entries[0].Detail)
	assert.Contains(t, *audit.entries[0].Detail, "write timeout")
}

func TestExecute_NotificationFailureDoesNotUndoCommit(t *testing.T) {
	ledger := &fakeLedger{}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	uc := newTestUseCase(ledger, nil, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.NotificationSent)
	assert.Len(t, ledger.bookings, 1, "booking must survive a notification failure")
}

func TestExecute_NoEmailSkipsNotification(t *testing.T) {
	ledger := &fakeLedger{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(ledger, nil, notifier)

	req := validRequest()
	req.SupplierEmail = ""

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.NotificationSent)
	assert.Zero(t, notifier.sent)
}

func TestExecute_AuditFailureDoesNotAffectOutcome(t *testing.T) {
	ledger := &fakeLedger{}
	audit := &fakeAuditLog{err: errors.New("db down")}
	uc := newTestUseCase(ledger, audit, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.Len(t, ledger.bookings, 1)
}

func TestExecute_ConcurrentCommits_AtMostOneWins(t *testing.T) {
	ledger := &fakeLedger{}
	uc := newTestUseCase(ledger, nil, nil)

	const contenders = 8
	var wg sync.WaitGroup
	wg.Add(contenders)

	results := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.SupplierID = "prov-" + string(rune('a'+i))
			_, results[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotAlreadyTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins, "exactly one contender commits the slot")
	assert.Equal(t, contenders-1, conflicts)
	assert.Len(t, ledger.bookings, 1)
}
