// internal/domain/pantry/store.go
package pantry

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/your-org/pantry-backend/internal/pkg/numeric"
)

// Store owns every item, grouped in buckets keyed by category name, and the
// ordered category registry. It is not safe for concurrent use; callers
// serialise access.
type Store struct {
	categories []Category
	buckets    map[string][]Item
	nextID     int64
}

// NewStore creates a store holding the given categories followed by the default category
func NewStore(categoryNames ...string) *Store {
	s := &Store{
		buckets: make(map[string][]Item),
		nextID:  1,
	}

	for _, name := range categoryNames {
		if name = strings.TrimSpace(name); name != "" && name != DefaultCategoryName {
			s.categories = append(s.categories, Category{ID: uuid.NewString(), Name: name})
		}
	}
	s.ensureDefault()

	return s
}

// Restore rebuilds a store from a persisted snapshot. Items stored under an
// unregistered category move to the default bucket, invalid numbers are
// coerced, and duplicated or missing ids are reassigned.
func Restore(snap *Snapshot) *Store {
	s := &Store{
		buckets: make(map[string][]Item),
		nextID:  1,
	}

	for _, cat := range snap.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			continue
		}
		if cat.ID == "" {
			cat.ID = uuid.NewString()
		}
		cat.Name = name
		s.categories = append(s.categories, cat)
	}
	s.ensureDefault()

	for _, item := range snap.Items {
		for _, it := range item {
			if it.ID >= s.nextID {
				s.nextID = it.ID + 1
			}
		}
	}

	seen := make(map[int64]bool)
	for _, name := range s.bucketOrder(snap.Items) {
		for _, it := range snap.Items[name] {
			if strings.TrimSpace(it.Name) == "" {
				continue
			}
			if it.ID <= 0 || seen[it.ID] {
				it.ID = s.nextID
				s.nextID++
			}
			seen[it.ID] = true

			it.Category = s.resolve(name)
			it.Price = numeric.Clamp(it.Price)
			it.Quantity = numeric.Clamp(it.Quantity)
			it.Icon = ParseIcon(string(it.Icon))
			s.buckets[it.Category] = append(s.buckets[it.Category], it)
		}
	}

	return s
}

// Snapshot exports the store as a persistable document. The budget is set by the caller.
func (s *Store) Snapshot() *Snapshot {
	snap := &Snapshot{
		Items:      make(map[string][]Item, len(s.buckets)),
		Categories: s.Categories(),
	}
	for name, items := range s.buckets {
		if len(items) == 0 {
			continue
		}
		snap.Items[name] = append([]Item(nil), items...)
	}
	return snap
}

// AddItem creates an item in the named category, routing unknown categories
// to the default bucket. Unparsable or negative amounts become 0; an omitted
// quantity defaults to 1.
func (s *Store) AddItem(in NewItem) (Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Item{}, ErrInvalidName
	}

	quantity := 1.0
	if strings.TrimSpace(in.Quantity.String()) != "" {
		quantity = coerce(in.Quantity.String())
	}

	item := Item{
		ID:          s.nextID,
		Name:        name,
		Category:    s.resolve(in.Category),
		Price:       coerce(in.Price.String()),
		Quantity:    quantity,
		Unit:        strings.TrimSpace(in.Unit),
		IsEssential: in.IsEssential,
		Icon:        ParseIcon(in.Icon),
	}
	s.nextID++

	s.buckets[item.Category] = append(s.buckets[item.Category], item)
	return item, nil
}

// UpdateItem applies a partial update. A numeric field that cannot be parsed
// keeps its previous value and a negative one is stored as 0. The returned
// flag reports whether anything changed.
func (s *Store) UpdateItem(category string, id int64, patch ItemPatch) (Item, bool, error) {
	bucket, idx, ok := s.locate(category, id)
	if !ok {
		return Item{}, false, ErrItemNotFound
	}

	item := s.buckets[bucket][idx]
	changed := false

	if patch.Name != nil {
		if name := strings.TrimSpace(*patch.Name); name != "" && name != item.Name {
			item.Name = name
			changed = true
		}
	}
	if patch.Price != nil {
		if v, ok := amountUpdate(item.Price, *patch.Price); ok {
			item.Price = v
			changed = true
		}
	}
	if patch.Quantity != nil {
		if v, ok := amountUpdate(item.Quantity, *patch.Quantity); ok {
			item.Quantity = v
			changed = true
		}
	}
	if patch.Unit != nil {
		if unit := strings.TrimSpace(*patch.Unit); unit != item.Unit {
			item.Unit = unit
			changed = true
		}
	}
	if patch.Icon != nil {
		if icon := ParseIcon(*patch.Icon); icon != item.Icon {
			item.Icon = icon
			changed = true
		}
	}

	if changed {
		s.buckets[bucket][idx] = item
	}
	return item, changed, nil
}

// DeleteItem removes an item. Deleting an absent id is a no-op reported as false.
func (s *Store) DeleteItem(category string, id int64) bool {
	bucket, idx, ok := s.locate(category, id)
	if !ok {
		return false
	}

	items := s.buckets[bucket]
	s.buckets[bucket] = append(items[:idx:idx], items[idx+1:]...)
	if len(s.buckets[bucket]) == 0 {
		delete(s.buckets, bucket)
	}
	return true
}

// ToggleEssential flips the essential flag
func (s *Store) ToggleEssential(category string, id int64) (Item, error) {
	bucket, idx, ok := s.locate(category, id)
	if !ok {
		return Item{}, ErrItemNotFound
	}

	s.buckets[bucket][idx].IsEssential = !s.buckets[bucket][idx].IsEssential
	return s.buckets[bucket][idx], nil
}

// ToggleChecked flips cart membership
func (s *Store) ToggleChecked(id int64) (Item, error) {
	bucket, idx, ok := s.locate("", id)
	if !ok {
		return Item{}, ErrItemNotFound
	}

	s.buckets[bucket][idx].Checked = !s.buckets[bucket][idx].Checked
	return s.buckets[bucket][idx], nil
}

// UncheckAll clears cart membership on every item and returns how many were checked
func (s *Store) UncheckAll() int {
	cleared := 0
	for name := range s.buckets {
		for i := range s.buckets[name] {
			if s.buckets[name][i].Checked {
				s.buckets[name][i].Checked = false
				cleared++
			}
		}
	}
	return cleared
}

// MoveItem moves an item to another registered category, appending it to the
// destination bucket with all other fields preserved.
func (s *Store) MoveItem(id int64, from, to string) (Item, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == to {
		return Item{}, ErrSameCategory
	}
	if !s.HasCategory(to) {
		return Item{}, ErrCategoryNotFound
	}

	bucket, idx, ok := s.locate(from, id)
	if !ok {
		return Item{}, ErrItemNotFound
	}
	if bucket == to {
		return Item{}, ErrSameCategory
	}

	item := s.buckets[bucket][idx]
	s.DeleteItem(bucket, id)

	item.Category = to
	s.buckets[to] = append(s.buckets[to], item)
	return item, nil
}

// Item returns the item with the given id
func (s *Store) Item(id int64) (Item, bool) {
	bucket, idx, ok := s.locate("", id)
	if !ok {
		return Item{}, false
	}
	return s.buckets[bucket][idx], true
}

// Items returns every item in category order, then insertion order
func (s *Store) Items() []Item {
	var items []Item
	for _, name := range s.categoryNames() {
		items = append(items, s.buckets[name]...)
	}
	return items
}

// ItemsIn returns a copy of one category bucket
func (s *Store) ItemsIn(category string) []Item {
	return append([]Item(nil), s.buckets[strings.TrimSpace(category)]...)
}

// Len returns the total number of items
func (s *Store) Len() int {
	n := 0
	for _, items := range s.buckets {
		n += len(items)
	}
	return n
}

// locate finds an item by id, looking in the given bucket first. Ids are
// unique across buckets, so a stale or empty category still finds the item.
func (s *Store) locate(category string, id int64) (string, int, bool) {
	category = strings.TrimSpace(category)
	if category != "" {
		for i, it := range s.buckets[category] {
			if it.ID == id {
				return category, i, true
			}
		}
	}

	for name, items := range s.buckets {
		for i, it := range items {
			if it.ID == id {
				return name, i, true
			}
		}
	}
	return "", 0, false
}

// bucketOrder returns the bucket names of a snapshot with registered
// categories first, so restored items keep a deterministic order.
func (s *Store) bucketOrder(buckets map[string][]Item) []string {
	var order []string
	seen := make(map[string]bool)
	for _, name := range s.categoryNames() {
		if _, ok := buckets[name]; ok {
			order = append(order, name)
			seen[name] = true
		}
	}

	var rest []string
	for name := range buckets {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(order, rest...)
}

// coerce parses an amount for a new item: invalid input and negatives become 0
func coerce(raw string) float64 {
	v, err := numeric.Parse(raw)
	if err != nil {
		return 0
	}
	return numeric.Clamp(v)
}

// amountUpdate parses an amount for an existing item. It reports false when
// the input is unparsable (the old value is kept) or equal to the old value.
func amountUpdate(old float64, raw numeric.Input) (float64, bool) {
	v, err := numeric.Parse(raw.String())
	if err != nil {
		return old, false
	}
	v = numeric.Clamp(v)
	if numeric.Equal(v, old) {
		return old, false
	}
	return v, true
}
