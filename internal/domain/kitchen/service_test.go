package kitchen_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/domain/budget"
	"github.com/your-org/pantry-backend/internal/domain/kitchen"
	"github.com/your-org/pantry-backend/internal/domain/pantry"
	"github.com/your-org/pantry-backend/internal/pkg/logger"
	"github.com/your-org/pantry-backend/internal/pkg/numeric"
)

func newService(t *testing.T, setupMock func(m *kitchen.MockGateway)) *kitchen.Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := kitchen.NewMockGateway(ctrl)
	if setupMock != nil {
		setupMock(gateway)
	}

	cfg := &config.Config{Persistence: config.PersistenceConfig{SaveTimeout: time.Second}}
	return kitchen.NewService(gateway, cfg, logger.Discard())
}

func TestService_Init(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *kitchen.MockGateway)
		wantErr   bool
		wantItems int
		wantCats  int
	}

	tests := []testCase{
		{
			name: "NoDocument",
			setupMock: func(m *kitchen.MockGateway) {
				m.EXPECT().Load(gomock.Any()).Return(nil, nil)
			},
			wantItems: 0,
			wantCats:  len(pantry.SeedCategories) + 1,
		},
		{
			name: "Hydrated",
			setupMock: func(m *kitchen.MockGateway) {
				m.EXPECT().Load(gomock.Any()).Return(&pantry.Snapshot{
					Categories: []pantry.Category{{ID: "c1", Name: "Fruits"}},
					Items: map[string][]pantry.Item{
						"Fruits": {{ID: 1, Name: "Pommes", Price: 2, Quantity: 1}},
					},
					Budget: 40,
				}, nil)
			},
			wantItems: 1,
			wantCats:  2,
		},
		{
			name: "LoadFailureKeepsDefaults",
			setupMock: func(m *kitchen.MockGateway) {
				m.EXPECT().Load(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantErr:   true,
			wantItems: 0,
			wantCats:  len(pantry.SeedCategories) + 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.setupMock)

			err := svc.Init(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, kitchen.ErrPersistence)
				assert.ErrorIs(t, svc.LoadError(), kitchen.ErrPersistence)
			} else {
				assert.NoError(t, err)
				assert.NoError(t, svc.LoadError())
			}

			assert.Len(t, svc.Items(), tt.wantItems)
			assert.Len(t, svc.Categories(), tt.wantCats)
		})
	}
}

func TestService_AddItem_Persists(t *testing.T) {
	var saved *pantry.Snapshot
	svc := newService(t, func(m *kitchen.MockGateway) {
		m.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snap *pantry.Snapshot) error {
				saved = snap
				return nil
			})
	})

	item, err := svc.AddItem(context.Background(), pantry.NewItem{Category: "Fruits", Name: "Pommes", Price: "2,5", Quantity: "3"})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, []pantry.Item{item}, saved.Items["Fruits"])
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestService_AddItem_InvalidNameDoesNotSave(t *testing.T) {
	svc := newService(t, nil)

	_, err := svc.AddItem(context.Background(), pantry.NewItem{Category: "Fruits", Name: " "})
	assert.ErrorIs(t, err, pantry.ErrInvalidName)
}

func TestService_SaveFailureKeepsLocalState(t *testing.T) {
	svc := newService(t, func(m *kitchen.MockGateway) {
		gomock.InOrder(
			m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("timeout")),
			m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		)
	})

	item, err := svc.AddItem(context.Background(), pantry.NewItem{Category: "Fruits", Name: "Pommes"})
	assert.ErrorIs(t, err, kitchen.ErrPersistence)
	assert.Equal(t, "Pommes", item.Name)
	assert.Len(t, svc.Items(), 1)
	assert.True(t, svc.Pending())

	require.NoError(t, svc.RetryPending(context.Background()))
	assert.False(t, svc.Pending())

	// Nothing pending, no further save expected
	require.NoError(t, svc.RetryPending(context.Background()))
}

func TestService_UpdateItem_UnchangedDoesNotSave(t *testing.T) {
	svc := newService(t, func(m *kitchen.MockGateway) {
		m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	})
	ctx := context.Background()

	item, err := svc.AddItem(ctx, pantry.NewItem{Category: "Fruits", Name: "Pommes", Price: "2.5"})
	require.NoError(t, err)

	same := numeric.Input("2,50")
	got, err := svc.UpdateItem(ctx, "Fruits", item.ID, pantry.ItemPatch{Price: &same})
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.Price)

	negative := numeric.Input("-5")
	got, err = svc.UpdateItem(ctx, "Fruits", item.ID, pantry.ItemPatch{Price: &negative})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Price)
}

func TestService_DeleteItem_AbsentIsNoop(t *testing.T) {
	svc := newService(t, nil)

	assert.NoError(t, svc.DeleteItem(context.Background(), "Fruits", 12))
}

func TestService_CartAndBudget(t *testing.T) {
	svc := newService(t, func(m *kitchen.MockGateway) {
		m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	})
	ctx := context.Background()

	_, err := svc.SetBudget(ctx, "7,5")
	require.NoError(t, err)

	item, err := svc.AddItem(ctx, pantry.NewItem{Category: "Fruits", Name: "Pommes", Price: "2,5", Quantity: "3"})
	require.NoError(t, err)
	_, err = svc.ToggleChecked(ctx, item.ID)
	require.NoError(t, err)

	view := svc.Cart()
	assert.Equal(t, 7.5, view.Totals.TotalCost)
	assert.Equal(t, budget.Status{Budget: 7.5, Total: 7.5, Remaining: 0, Exceeded: false}, view.Budget)

	_, err = svc.UpdateItem(ctx, "", item.ID, pantry.ItemPatch{Quantity: ptr(numeric.Input("4"))})
	require.NoError(t, err)
	assert.True(t, svc.Budget().Exceeded)

	status, err := svc.SetBudget(ctx, "abc")
	assert.ErrorIs(t, err, budget.ErrInvalidBudget)
	assert.Equal(t, 7.5, status.Budget)

	cleared, err := svc.ClearCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)
	assert.Empty(t, svc.Cart().Items)
	assert.Len(t, svc.Items(), 1)
}

func TestService_DeleteCategory(t *testing.T) {
	svc := newService(t, func(m *kitchen.MockGateway) {
		m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	})
	ctx := context.Background()

	for _, name := range []string{"Eau", "Jus"} {
		_, err := svc.AddItem(ctx, pantry.NewItem{Category: "Boissons", Name: name})
		require.NoError(t, err)
	}

	var boissons pantry.Category
	for _, c := range svc.Categories() {
		if c.Name == "Boissons" {
			boissons = c
		}
	}
	require.NotEmpty(t, boissons.ID)

	moved, err := svc.DeleteCategory(ctx, boissons.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	overview := svc.Overview()
	assert.Len(t, overview.Snapshot.Items[pantry.DefaultCategoryName], 2)
	assert.NotContains(t, svc.CategoryNames(), "Boissons")
}

func TestService_Run_RetriesPendingSave(t *testing.T) {
	saved := make(chan struct{}, 1)
	svc := newService(t, func(m *kitchen.MockGateway) {
		gomock.InOrder(
			m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("down")),
			m.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *pantry.Snapshot) error {
				saved <- struct{}{}
				return nil
			}),
		)
	})

	_, err := svc.AddCategory(context.Background(), "Épices")
	require.ErrorIs(t, err, kitchen.ErrPersistence)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx, 10*time.Millisecond)

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("pending save was not retried")
	}

	assert.Eventually(t, func() bool { return !svc.Pending() }, time.Second, 10*time.Millisecond)
}

func TestService_ReadsDoNotWaitForSlowSave(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	svc := newService(t, func(m *kitchen.MockGateway) {
		m.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ *pantry.Snapshot) error {
				close(started)
				select {
				case <-release:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
	})

	errc := make(chan error, 1)
	go func() {
		_, err := svc.AddItem(context.Background(), pantry.NewItem{Category: "Fruits", Name: "Pommes", Price: "2"})
		errc <- err
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("save was not started")
	}

	reads := make(chan int, 1)
	go func() {
		_ = svc.Cart()
		_ = svc.Budget()
		_ = svc.Pending()
		reads <- len(svc.Items())
	}()

	select {
	case n := <-reads:
		assert.Equal(t, 1, n)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("reads blocked behind a pending save")
	}

	_, err := svc.SetBudget(context.Background(), "abc")
	assert.ErrorIs(t, err, budget.ErrInvalidBudget)

	close(release)
	require.NoError(t, <-errc)
	assert.False(t, svc.Pending())
}

func TestService_ConcurrentMutationsSaveLatestState(t *testing.T) {
	var (
		mu    sync.Mutex
		saved []*pantry.Snapshot
	)
	svc := newService(t, func(m *kitchen.MockGateway) {
		m.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snap *pantry.Snapshot) error {
				mu.Lock()
				defer mu.Unlock()
				saved = append(saved, snap)
				return nil
			}).MinTimes(1).MaxTimes(10)
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.AddItem(context.Background(), pantry.NewItem{Category: "Fruits", Name: "Item " + strconv.Itoa(i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, saved)
	assert.Len(t, saved[len(saved)-1].Items["Fruits"], 10)
	assert.False(t, svc.Pending())
}

func ptr[T any](v T) *T {
	return &v
}
