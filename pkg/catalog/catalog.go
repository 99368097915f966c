package catalog

// Catalog bundles the item and location registries for one session.
// Build it once per process and share it read-only between worlds.
type Catalog struct {
	Items     *ItemRegistry
	Locations *LocationRegistry
}

// New builds the vanilla Sekiro catalog with fresh allocators.
func New() (*Catalog, error) {
	return NewWithAllocators(
		NewCodeAllocator(BaseItemCode),
		NewCodeAllocator(BaseLocationCode),
	)
}

// NewWithAllocators builds the vanilla Sekiro catalog using the given
// session-owned allocators.
func NewWithAllocators(itemAlloc, locAlloc *CodeAllocator) (*Catalog, error) {
	items, err := NewItemRegistry(itemAlloc, vanillaItems)
	if err != nil {
		return nil, err
	}
	locations, err := NewLocationRegistry(locAlloc, vanillaRegionOrder, vanillaLocations, items)
	if err != nil {
		return nil, err
	}
	return &Catalog{Items: items, Locations: locations}, nil
}
