package scraper

import "errors"

var (
	// ErrRowShape marks a result row whose cell count does not match the
	// column table. The row is dropped; the batch continues.
	ErrRowShape = errors.New("unexpected row shape")

	// ErrBadCell marks a cell whose text cannot be coerced to its column's
	// declared type. Handled like ErrRowShape: that row is dropped.
	ErrBadCell = errors.New("cell coercion failed")
)
