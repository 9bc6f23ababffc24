package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/hk-dashboard-api/internal/domain"
)

// blockingDashboard libera cada carga somente quando o teste manda
type blockingDashboard struct {
	mu       sync.Mutex
	release  map[domain.PeriodKey]chan struct{}
	started  chan domain.PeriodKey
	canceled map[domain.PeriodKey]bool
}

func newBlockingDashboard() *blockingDashboard {
	return &blockingDashboard{
		release:  map[domain.PeriodKey]chan struct{}{},
		started:  make(chan domain.PeriodKey, 10),
		canceled: map[domain.PeriodKey]bool{},
	}
}

func (d *blockingDashboard) gate(period domain.PeriodKey) chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	ch, ok := d.release[period]
	if !ok {
		ch = make(chan struct{})
		d.release[period] = ch
	}
	return ch
}

func (d *blockingDashboard) Get(ctx context.Context, period domain.PeriodKey) (*View, error) {
	d.started <- period
	select {
	case <-d.gate(period):
	case <-ctx.Done():
		d.mu.Lock()
		d.canceled[period] = true
		d.mu.Unlock()
		// Simula uma resposta que chega depois do cancelamento
		<-d.gate(period)
	}
	return &View{Period: period, Status: domain.BundleReady}, nil
}

func (d *blockingDashboard) Refresh(ctx context.Context, period domain.PeriodKey) (*View, error) {
	return d.Get(ctx, period)
}

func (d *blockingDashboard) Invalidate(domain.PeriodKey) {}

func TestSession_StaleResultIsDiscarded(t *testing.T) {
	dashboard := newBlockingDashboard()
	session := NewSession(dashboard)

	oldPeriod := domain.MustParsePeriod("2510")
	newPeriod := domain.MustParsePeriod("2511")

	type result struct {
		view *View
		err  error
	}
	oldResult := make(chan result, 1)

	go func() {
		view, err := session.Select(context.Background(), oldPeriod)
		oldResult <- result{view, err}
	}()
	require.Equal(t, oldPeriod, <-dashboard.started)

	newResult := make(chan result, 1)
	go func() {
		view, err := session.Select(context.Background(), newPeriod)
		newResult <- result{view, err}
	}()
	require.Equal(t, newPeriod, <-dashboard.started)

	// A carga nova termina antes da antiga
	close(dashboard.gate(newPeriod))
	got := <-newResult
	require.NoError(t, got.err)
	assert.Equal(t, newPeriod, got.view.Period)

	close(dashboard.gate(oldPeriod))
	stale := <-oldResult
	assert.ErrorIs(t, stale.err, ErrSuperseded)
	assert.Nil(t, stale.view)

	state := session.State()
	assert.Equal(t, newPeriod, state.Period)
	assert.False(t, state.Loading)
	require.NotNil(t, state.View)
	assert.Equal(t, newPeriod, state.View.Period)

	dashboard.mu.Lock()
	assert.True(t, dashboard.canceled[oldPeriod])
	dashboard.mu.Unlock()
}

func TestSession_ReloadWithoutPeriod(t *testing.T) {
	session := NewSession(newBlockingDashboard())

	_, err := session.Reload(context.Background())
	assert.ErrorIs(t, err, ErrNoActivePeriod)
}

func TestSession_Reload(t *testing.T) {
	dashboard := newBlockingDashboard()
	session := NewSession(dashboard)
	period := domain.MustParsePeriod("2511")

	close(dashboard.gate(period))

	_, err := session.Select(context.Background(), period)
	require.NoError(t, err)
	<-dashboard.started

	firstTicket := session.State().Ticket

	view, err := session.Reload(context.Background())
	require.NoError(t, err)
	<-dashboard.started

	assert.Equal(t, period, view.Period)
	assert.NotEqual(t, firstTicket, session.State().Ticket)
}

func TestSession_RequestCancellationDoesNotAbortLoad(t *testing.T) {
	dashboard := newBlockingDashboard()
	session := NewSession(dashboard)
	period := domain.MustParsePeriod("2511")

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := session.Select(ctx, period)
		done <- err
	}()
	<-dashboard.started

	cancel()
	time.Sleep(10 * time.Millisecond)
	close(dashboard.gate(period))

	require.NoError(t, <-done)

	dashboard.mu.Lock()
	assert.False(t, dashboard.canceled[period])
	dashboard.mu.Unlock()
}

func TestSession_ReloadDoesNotCancelInFlightSelect(t *testing.T) {
	dashboard := newBlockingDashboard()
	session := NewSession(dashboard)
	period := domain.MustParsePeriod("2511")

	done := make(chan error, 1)
	go func() {
		_, err := session.Select(context.Background(), period)
		done <- err
	}()
	<-dashboard.started

	ticket := session.State().Ticket

	_, err := session.Reload(context.Background())
	assert.ErrorIs(t, err, ErrLoadInProgress)
	assert.Equal(t, ticket, session.State().Ticket)

	close(dashboard.gate(period))
	require.NoError(t, <-done)

	dashboard.mu.Lock()
	assert.False(t, dashboard.canceled[period])
	dashboard.mu.Unlock()
}

func TestSession_SelectAssignsTicket(t *testing.T) {
	dashboard := newBlockingDashboard()
	session := NewSession(dashboard)
	period := domain.MustParsePeriod("2511")
	close(dashboard.gate(period))

	_, err := session.Select(context.Background(), period)
	require.NoError(t, err)
	<-dashboard.started

	assert.Len(t, session.State().Ticket, 10)
}
