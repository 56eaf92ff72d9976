// internal/domain/pantry/category.go
package pantry

import (
	"strings"

	"github.com/google/uuid"
)

// Categories returns the registry in display order
func (s *Store) Categories() []Category {
	return append([]Category(nil), s.categories...)
}

// Category returns a registered category by id
func (s *Store) Category(id string) (Category, bool) {
	for _, cat := range s.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// HasCategory reports whether a category with this name is registered
func (s *Store) HasCategory(name string) bool {
	name = strings.TrimSpace(name)
	for _, cat := range s.categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// AddCategory registers a category. Duplicate names are allowed; they share
// one item bucket and are told apart by id.
func (s *Store) AddCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrInvalidName
	}

	cat := Category{ID: uuid.NewString(), Name: name}

	// Keep the fallback category last
	last := len(s.categories) - 1
	if last >= 0 && s.categories[last].ID == DefaultCategoryID {
		s.categories = append(s.categories[:last], cat, s.categories[last])
	} else {
		s.categories = append(s.categories, cat)
	}

	return cat, nil
}

// RenameCategory changes a category's display name. Its items follow it to
// the new name unless another category still carries the old one.
func (s *Store) RenameCategory(id, newName string) (Category, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return Category{}, ErrInvalidName
	}
	if id == DefaultCategoryID {
		return Category{}, ErrDefaultCategory
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return Category{}, ErrCategoryNotFound
	}

	oldName := s.categories[idx].Name
	if oldName == newName {
		return s.categories[idx], nil
	}
	s.categories[idx].Name = newName

	if !s.HasCategory(oldName) {
		s.moveBucket(oldName, newName)
	}

	return s.categories[idx], nil
}

// DeleteCategory removes a category. Its items are reassigned to the default
// category unless another category still carries the same name. It returns
// the number of reassigned items.
func (s *Store) DeleteCategory(id string) (int, error) {
	if id == DefaultCategoryID {
		return 0, ErrDefaultCategory
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return 0, ErrCategoryNotFound
	}

	name := s.categories[idx].Name
	s.categories = append(s.categories[:idx:idx], s.categories[idx+1:]...)

	if s.HasCategory(name) {
		return 0, nil
	}
	return s.moveBucket(name, DefaultCategoryName), nil
}

// resolve maps a requested category name to a registered bucket name
func (s *Store) resolve(name string) string {
	name = strings.TrimSpace(name)
	if s.HasCategory(name) {
		return name
	}
	return DefaultCategoryName
}

// moveBucket appends every item of one bucket to another
func (s *Store) moveBucket(from, to string) int {
	items := s.buckets[from]
	if len(items) == 0 {
		delete(s.buckets, from)
		return 0
	}

	for i := range items {
		items[i].Category = to
	}
	s.buckets[to] = append(s.buckets[to], items...)
	delete(s.buckets, from)

	return len(items)
}

// ensureDefault registers the fallback category. It is found by id; a user
// category named "Autre" keeps its own id. Only documents written without a
// "default" id have their first "Autre" entry promoted.
func (s *Store) ensureDefault() {
	if i := s.indexOf(DefaultCategoryID); i >= 0 {
		s.categories[i].Name = DefaultCategoryName
		s.dedupeDefault(i)
		return
	}
	for i, cat := range s.categories {
		if cat.Name == DefaultCategoryName {
			s.categories[i].ID = DefaultCategoryID
			return
		}
	}
	s.categories = append(s.categories, Category{ID: DefaultCategoryID, Name: DefaultCategoryName})
}

// dedupeDefault drops later entries that also claim the default id
func (s *Store) dedupeDefault(keep int) {
	kept := s.categories[:0]
	for i, cat := range s.categories {
		if cat.ID == DefaultCategoryID && i != keep {
			continue
		}
		kept = append(kept, cat)
	}
	s.categories = kept
}

func (s *Store) indexOf(id string) int {
	for i, cat := range s.categories {
		if cat.ID == id {
			return i
		}
	}
	return -1
}

// categoryNames returns registered names in order without duplicates
func (s *Store) categoryNames() []string {
	names := make([]string, 0, len(s.categories))
	seen := make(map[string]bool, len(s.categories))
	for _, cat := range s.categories {
		if !seen[cat.Name] {
			seen[cat.Name] = true
			names = append(names, cat.Name)
		}
	}
	return names
}
