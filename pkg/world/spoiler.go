package world

// Spoiler is the human-readable placement record for one world,
// consumed by the console browser and written alongside slot data.
type Spoiler struct {
	Seed          string          `json:"seed"`
	Slot          string          `json:"slot"`
	Regions       []SpoilerRegion `json:"regions"`
	Excluded      []string        `json:"excluded,omitempty"`
	StartingItems []string        `json:"starting_items,omitempty"`
}

// SpoilerRegion lists one region's locations in build order.
type SpoilerRegion struct {
	Name      string            `json:"name"`
	Locations []SpoilerLocation `json:"locations"`
}

// SpoilerLocation records what ended up where.
type SpoilerLocation struct {
	Name string `json:"name"`

	// Item is empty while the location awaits the external fill.
	Item string `json:"item,omitempty"`

	Event  bool `json:"event,omitempty"`
	Locked bool `json:"locked,omitempty"`
}

// Spoiler builds the placement record from current state. Worlds whose
// excluded behavior allows useful items report the retained exclusion
// set, since the raw one has been cleared by then.
func (w *World) Spoiler() Spoiler {
	s := Spoiler{
		Seed: w.SeedName,
		Slot: w.SlotName,
	}
	for _, region := range w.Regions() {
		if len(region.Locations) == 0 {
			continue
		}
		sr := SpoilerRegion{Name: region.Name}
		for _, loc := range region.Locations {
			sl := SpoilerLocation{
				Name:   loc.Data.Name,
				Event:  loc.Event,
				Locked: loc.Locked,
			}
			if loc.Item != nil {
				sl.Item = loc.Item.Data.Name
			}
			sr.Locations = append(sr.Locations, sl)
		}
		s.Regions = append(s.Regions, sr)
	}
	if w.Options.ExcludedLocationBehavior == BehaviorAllowUseful {
		s.Excluded = w.AllExcludedLocations()
	}
	for _, item := range w.Precollected() {
		s.StartingItems = append(s.StartingItems, item.Data.Name)
	}
	return s
}
