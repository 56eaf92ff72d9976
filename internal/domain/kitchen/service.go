// internal/domain/kitchen/service.go
package kitchen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/domain/budget"
	"github.com/your-org/pantry-backend/internal/domain/cart"
	"github.com/your-org/pantry-backend/internal/domain/pantry"
)

// ErrPersistence wraps load and save failures of the document store. A
// mutation returning it has still been applied in memory.
var ErrPersistence = errors.New("pantry could not be persisted")

//go:generate mockgen -source=service.go -destination=gateway_mock.go -package=kitchen
type Gateway interface {
	// Load returns nil and no error when no document has been saved yet.
	Load(ctx context.Context) (*pantry.Snapshot, error)
	// Save overwrites the whole document.
	Save(ctx context.Context, snap *pantry.Snapshot) error
}

// Overview is the full pantry state returned to clients
type Overview struct {
	Snapshot *pantry.Snapshot `json:"pantry"`
	Cart     cart.Summary     `json:"cart"`
	Budget   budget.Status    `json:"budget"`
}

// CartView is the cart with its budget comparison
type CartView struct {
	cart.Summary
	Budget budget.Status `json:"budget"`
}

// Service is the single in-memory pantry, hydrated from and saved to a Gateway.
// The in-memory state is authoritative; saves are last-write-wins and a
// failed save is retried later without rolling anything back.
//
// mu guards the state and is never held across a Gateway call. saveMu
// serialises saves, so reads and mutations proceed while a save is slow.
type Service struct {
	mu      sync.Mutex
	store   *pantry.Store
	budget  *budget.Tracker
	gateway Gateway
	logger  *logrus.Logger

	saveMu       sync.Mutex
	saveTimeout  time.Duration
	version      uint64
	savedVersion uint64
	dirty        bool
	loadErr      error
	updatedAt    time.Time
}

// NewService creates a new pantry service holding the seeded default state
func NewService(gateway Gateway, cfg *config.Config, logger *logrus.Logger) *Service {
	saveTimeout := cfg.Persistence.SaveTimeout
	if saveTimeout <= 0 {
		saveTimeout = 5 * time.Second
	}

	return &Service{
		store:       pantry.NewStore(pantry.SeedCategories...),
		budget:      budget.NewTracker(0),
		gateway:     gateway,
		logger:      logger,
		saveTimeout: saveTimeout,
	}
}

// Init hydrates the service from the gateway. On failure the default state is
// kept and the error is remembered so clients can be told.
func (s *Service) Init(ctx context.Context) error {
	snap, err := s.gateway.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.loadErr = fmt.Errorf("%w: load: %v", ErrPersistence, err)
		s.logger.WithError(err).Warn("Failed to load pantry, starting from an empty pantry")
		return s.loadErr
	}

	s.loadErr = nil
	if snap == nil {
		s.logger.Info("No saved pantry found, starting from the default categories")
		return nil
	}

	s.store = pantry.Restore(snap)
	s.budget = budget.NewTracker(snap.Budget)
	s.updatedAt = snap.UpdatedAt

	s.logger.WithFields(logrus.Fields{
		"items":      s.store.Len(),
		"categories": len(s.store.Categories()),
	}).Info("Pantry loaded")

	return nil
}

// LoadError returns the error of the last Init, if any
func (s *Service) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Overview returns the snapshot together with the derived cart and budget views
func (s *Service) Overview() Overview {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := cart.Summarize(s.store)
	return Overview{
		Snapshot: s.snapshotLocked(),
		Cart:     summary,
		Budget:   s.budget.Status(summary.Totals.TotalCost),
	}
}

// Items returns every item in display order
func (s *Service) Items() []pantry.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Items()
}

// AddItem creates an item and persists the pantry
func (s *Service) AddItem(ctx context.Context, in pantry.NewItem) (pantry.Item, error) {
	var item pantry.Item
	err := s.mutate(ctx, func() (bool, error) {
		var err error
		item, err = s.store.AddItem(in)
		return err == nil, err
	})
	return item, err
}

// AddItems creates several items with a single save
func (s *Service) AddItems(ctx context.Context, in []pantry.NewItem) ([]pantry.Item, error) {
	items := make([]pantry.Item, 0, len(in))
	err := s.mutate(ctx, func() (bool, error) {
		for _, n := range in {
			item, err := s.store.AddItem(n)
			if err != nil {
				continue
			}
			items = append(items, item)
		}
		return len(items) > 0, nil
	})
	return items, err
}

// UpdateItem applies a partial update; nothing is saved when no field changed
func (s *Service) UpdateItem(ctx context.Context, category string, id int64, patch pantry.ItemPatch) (pantry.Item, error) {
	var item pantry.Item
	err := s.mutate(ctx, func() (bool, error) {
		var (
			changed bool
			err     error
		)
		item, changed, err = s.store.UpdateItem(category, id, patch)
		return changed, err
	})
	return item, err
}

// DeleteItem removes an item; deleting an absent item is a no-op
func (s *Service) DeleteItem(ctx context.Context, category string, id int64) error {
	return s.mutate(ctx, func() (bool, error) {
		return s.store.DeleteItem(category, id), nil
	})
}

// ToggleEssential flips an item's essential flag
func (s *Service) ToggleEssential(ctx context.Context, category string, id int64) (pantry.Item, error) {
	var item pantry.Item
	err := s.mutate(ctx, func() (bool, error) {
		var err error
		item, err = s.store.ToggleEssential(category, id)
		return err == nil, err
	})
	return item, err
}

// ToggleChecked flips an item's cart membership
func (s *Service) ToggleChecked(ctx context.Context, id int64) (pantry.Item, error) {
	var item pantry.Item
	err := s.mutate(ctx, func() (bool, error) {
		var err error
		item, err = s.store.ToggleChecked(id)
		return err == nil, err
	})
	return item, err
}

// MoveItem moves an item to another category
func (s *Service) MoveItem(ctx context.Context, id int64, from, to string) (pantry.Item, error) {
	var item pantry.Item
	err := s.mutate(ctx, func() (bool, error) {
		var err error
		item, err = s.store.MoveItem(id, from, to)
		return err == nil, err
	})
	return item, err
}

// Categories returns the category registry
func (s *Service) Categories() []pantry.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Categories()
}

// CategoryNames returns the registered names in order
func (s *Service) CategoryNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := s.store.Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names
}

// AddCategory registers a category
func (s *Service) AddCategory(ctx context.Context, name string) (pantry.Category, error) {
	var cat pantry.Category
	err := s.mutate(ctx, func() (bool, error) {
		var err error
		cat, err = s.store.AddCategory(name)
		return err == nil, err
	})
	return cat, err
}

// RenameCategory renames a category
func (s *Service) RenameCategory(ctx context.Context, id, name string) (pantry.Category, error) {
	var cat pantry.Category
	err := s.mutate(ctx, func() (bool, error) {
		var err error
		cat, err = s.store.RenameCategory(id, name)
		return err == nil, err
	})
	return cat, err
}

// DeleteCategory removes a category and returns how many items were reassigned
func (s *Service) DeleteCategory(ctx context.Context, id string) (int, error) {
	var moved int
	err := s.mutate(ctx, func() (bool, error) {
		var err error
		moved, err = s.store.DeleteCategory(id)
		return err == nil, err
	})
	return moved, err
}

// Cart returns the selected items, totals and budget comparison
func (s *Service) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := cart.Summarize(s.store)
	return CartView{
		Summary: summary,
		Budget:  s.budget.Status(summary.Totals.TotalCost),
	}
}

// ClearCart unchecks every item
func (s *Service) ClearCart(ctx context.Context) (int, error) {
	var cleared int
	err := s.mutate(ctx, func() (bool, error) {
		cleared = cart.Clear(s.store)
		return cleared > 0, nil
	})
	return cleared, err
}

// Budget returns the budget compared with the current cart total
func (s *Service) Budget() budget.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget.Status(cart.TotalCost(cart.SelectedItems(s.store)))
}

// SetBudget stores a new budget. Invalid input returns budget.ErrInvalidBudget
// and keeps the previous value.
func (s *Service) SetBudget(ctx context.Context, raw string) (budget.Status, error) {
	var status budget.Status
	err := s.mutate(ctx, func() (bool, error) {
		err := s.budget.SetBudget(raw)
		status = s.budget.Status(cart.TotalCost(cart.SelectedItems(s.store)))
		return err == nil, err
	})
	return status, err
}

// Pending reports whether the last save failed and has not been retried successfully
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// RetryPending saves the pantry again if the last save failed
func (s *Service) RetryPending(ctx context.Context) error {
	if !s.Pending() {
		return nil
	}
	return s.persist(ctx, true)
}

// Flush saves the pantry unconditionally
func (s *Service) Flush(ctx context.Context) error {
	return s.persist(ctx, true)
}

// Run retries failed saves every interval until ctx is done
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.RetryPending(ctx); err != nil {
				s.logger.WithError(err).Debug("Pantry save retry failed")
			}
		}
	}
}

// mutate runs fn under the state lock and, when it reports a change,
// persists the pantry once the lock is released. The save outlives the
// caller's cancellation so a dropped request does not lose the write.
func (s *Service) mutate(ctx context.Context, fn func() (bool, error)) error {
	s.mu.Lock()
	changed, err := fn()
	if err == nil && changed {
		s.version++
		s.updatedAt = time.Now().UTC()
	}
	s.mu.Unlock()

	if err != nil || !changed {
		return err
	}
	return s.persist(context.WithoutCancel(ctx), false)
}

// persist saves the latest state. Concurrent callers queue on saveMu; one
// whose version was already written by an earlier save returns at once.
func (s *Service) persist(ctx context.Context, force bool) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	version := s.version
	if !force && version == s.savedVersion {
		s.mu.Unlock()
		return nil
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()
	err := s.gateway.Save(ctx, snap)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.dirty = true
		s.logger.WithError(err).Error("Failed to save pantry, keeping local state")
		return fmt.Errorf("%w: save: %v", ErrPersistence, err)
	}

	s.savedVersion = version
	if version == s.version {
		s.dirty = false
	}
	return nil
}

func (s *Service) snapshotLocked() *pantry.Snapshot {
	snap := s.store.Snapshot()
	snap.Budget = s.budget.Value()
	snap.UpdatedAt = s.updatedAt
	return snap
}
