package catalog

// Base codes for the identity allocators. These match the IDs the
// client has always used, so they must not change between releases.
const (
	BaseItemCode     int64 = 100000
	BaseLocationCode int64 = 100000
)

// CodeAllocator hands out sequential identity codes for items and
// locations. One allocator per kind is owned by the process-wide
// session; codes are append-only and order-dependent, so every world
// built in the same process sees the same catalog codes.
type CodeAllocator struct {
	next int64
}

// NewCodeAllocator returns an allocator whose first code is base.
func NewCodeAllocator(base int64) *CodeAllocator {
	return &CodeAllocator{next: base}
}

// Next returns the next unassigned code and advances the cursor.
func (a *CodeAllocator) Next() int64 {
	code := a.next
	a.next++
	return code
}
