package criteria

// Pagination is an optional (page number, page size) pair.
// Page numbers are 1-based. The zero value is NoPagination().
type Pagination struct {
	number int
	size   int
}

// NoPagination returns the absent variant.
func NoPagination() Pagination {
	return Pagination{}
}

// NewPagination creates a page. Both arguments must be >= 1.
func NewPagination(pageNumber, pageSize int) (Pagination, error) {
	if pageNumber < 1 {
		return Pagination{}, newError(ErrCodeInvalidPagination, "page_number", "page number must be >= 1, got %d", pageNumber)
	}
	if pageSize < 1 {
		return Pagination{}, newError(ErrCodeInvalidPagination, "page_size", "page size must be >= 1, got %d", pageSize)
	}
	return Pagination{number: pageNumber, size: pageSize}, nil
}

// PaginationFromPrimitives parses optional page fields. Both nil yields
// NoPagination(); exactly one present fails with INVALID_PAGINATION.
func PaginationFromPrimitives(pageNumber, pageSize *int) (Pagination, error) {
	switch {
	case pageNumber == nil && pageSize == nil:
		return NoPagination(), nil
	case pageNumber == nil:
		return Pagination{}, newError(ErrCodeInvalidPagination, "page_number", "page size given without a page number")
	case pageSize == nil:
		return Pagination{}, newError(ErrCodeInvalidPagination, "page_size", "page number given without a page size")
	}
	return NewPagination(*pageNumber, *pageSize)
}

// IsPresent reports whether a page was specified.
func (p Pagination) IsPresent() bool { return p.size > 0 }

// Number returns the 1-based page number (0 when absent).
func (p Pagination) Number() int { return p.number }

// Size returns the page size (0 when absent).
func (p Pagination) Size() int { return p.size }

// Offset returns the number of records preceding the page: (number-1)*size.
func (p Pagination) Offset() int {
	if !p.IsPresent() {
		return 0
	}
	return (p.number - 1) * p.size
}
