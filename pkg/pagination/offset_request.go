package pagination

import "fmt"

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page" validate:"min=1"`
	Size int `json:"size" query:"size" validate:"min=1,max=100"`
}

// Validate rejects negative parameters and then normalizes the request.
// Zero values mean "use the default".
func (r *OffsetRequest) Validate() error {
	if r.Page < 0 {
		return fmt.Errorf("page must not be negative, got %d", r.Page)
	}
	if r.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", r.Size)
	}
	r.Normalize()
	return nil
}

// Normalize fills defaults and caps the page size. It never fails.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
}

// Offset is the number of items skipped before this page.
func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
