package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"coffeehouse-pos/admin-svc/internal/domain"
	"coffeehouse-pos/admin-svc/internal/eventbus"
	"coffeehouse-pos/admin-svc/internal/mocks"
	"coffeehouse-pos/admin-svc/internal/service"

	"github.com/stretchr/testify/assert"
)

// fakeBus stands in for the Redis subscription in dashboard tests.
type fakeBus struct {
	events chan eventbus.Event
}

func newFakeBus() *fakeBus {
	return &fakeBus{events: make(chan eventbus.Event, 16)}
}

func (f *fakeBus) Subscribe(ctx context.Context) (<-chan eventbus.Event, func()) {
	return f.events, func() {}
}

func (f *fakeBus) emitNewOrder(t *testing.T, orderID int64) {
	t.Helper()
	payload, err := json.Marshal(map[string]int64{"order_id": orderID})
	assert.NoError(t, err)
	f.events <- eventbus.Event{Type: eventbus.EventNewOrder, Data: payload}
}

func TestDashboard_ReloadsOnNewOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := mocks.NewOrderRepository(t)
	bus := newFakeBus()

	repo.On("ListOrders").Return([]domain.Order{}, nil).Once()
	repo.On("ListOrders").Return([]domain.Order{
		{ID: 100, CustomerName: "Aye Chan", Status: domain.StatusPending},
	}, nil)

	dashboard := service.NewDashboard(repo, bus)
	dashboard.PollInterval = time.Hour // keep the ticker out of this test
	go dashboard.Run(ctx)

	bus.emitNewOrder(t, 100)

	assert.Eventually(t, func() bool {
		orders, _ := dashboard.Snapshot()
		return len(orders) == 1 && orders[0].ID == 100
	}, time.Second, 10*time.Millisecond)
}

func TestDashboard_PollBackstop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := mocks.NewOrderRepository(t)
	bus := newFakeBus()

	repo.On("ListOrders").Return([]domain.Order{}, nil).Once()
	// No event arrives; the ticker alone must pick the order up.
	repo.On("ListOrders").Return([]domain.Order{
		{ID: 100, Status: domain.StatusPending},
	}, nil)

	dashboard := service.NewDashboard(repo, bus)
	dashboard.PollInterval = 20 * time.Millisecond
	go dashboard.Run(ctx)

	assert.Eventually(t, func() bool {
		orders, _ := dashboard.Snapshot()
		return len(orders) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestDashboard_AlertDebounce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := mocks.NewOrderRepository(t)
	bus := newFakeBus()
	repo.On("ListOrders").Return([]domain.Order{}, nil)

	dashboard := service.NewDashboard(repo, bus)
	dashboard.PollInterval = time.Hour
	dashboard.AlertDebounce = 200 * time.Millisecond
	go dashboard.Run(ctx)

	// A rush of three orders within the debounce window chimes once.
	bus.emitNewOrder(t, 100)
	bus.emitNewOrder(t, 101)
	bus.emitNewOrder(t, 102)

	assert.Eventually(t, func() bool {
		return len(dashboard.Alerts()) == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(250 * time.Millisecond)
	assert.Len(t, dashboard.Alerts(), 1)

	// After the window passes the next order chimes again.
	bus.emitNewOrder(t, 103)
	assert.Eventually(t, func() bool {
		return len(dashboard.Alerts()) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestDashboard_SnapshotIsReplacedWholesale(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := mocks.NewOrderRepository(t)
	bus := newFakeBus()

	repo.On("ListOrders").Return([]domain.Order{
		{ID: 100, Status: domain.StatusPending},
		{ID: 101, Status: domain.StatusPending},
	}, nil).Once()
	// Order 101 was cleared from the store between reloads.
	repo.On("ListOrders").Return([]domain.Order{
		{ID: 100, Status: domain.StatusReady},
	}, nil)

	dashboard := service.NewDashboard(repo, bus)
	dashboard.PollInterval = time.Hour
	go dashboard.Run(ctx)

	assert.Eventually(t, func() bool {
		orders, _ := dashboard.Snapshot()
		return len(orders) == 2
	}, time.Second, 10*time.Millisecond)

	bus.events <- eventbus.Event{Type: eventbus.EventGenericUpdate}

	assert.Eventually(t, func() bool {
		orders, _ := dashboard.Snapshot()
		return len(orders) == 1 && orders[0].Status == domain.StatusReady
	}, time.Second, 10*time.Millisecond)
}
