package pantry

import "errors"

// Sentinel errors for the pantry domain. Every one of them leaves the store unchanged.
var (
	// ErrInvalidName indicates an item or category name that is empty after trimming.
	ErrInvalidName = errors.New("name must not be empty")

	// ErrItemNotFound indicates no item with the requested id exists.
	ErrItemNotFound = errors.New("item not found")

	// ErrCategoryNotFound indicates the requested category is not registered.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSameCategory indicates a move whose source and destination are identical.
	ErrSameCategory = errors.New("item is already in this category")

	// ErrDefaultCategory indicates an attempt to delete or rename the fallback category.
	ErrDefaultCategory = errors.New("the default category cannot be changed")
)
