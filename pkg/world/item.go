package world

import (
	"github.com/richarm4/sekiro-apworld/pkg/catalog"
)

// Item binds a catalog item to an owning player with a classification
// snapshot. Items are interchangeable value objects; only events are
// special, carrying no external code and always classifying as
// progression.
type Item struct {
	Data   catalog.ItemData
	Player int

	classification catalog.Classification
	event          bool
}

// ItemName returns the catalog name of the item.
func (i *Item) ItemName() string {
	return i.Data.Name
}

// Classification returns the classification snapshot taken when the
// instance was created.
func (i *Item) Classification() catalog.Classification {
	return i.classification
}

// Advancement reports whether the item is progression-classified.
func (i *Item) Advancement() bool {
	return i.classification == catalog.ClassProgression
}

// Code returns the external identity code, or zero for events.
func (i *Item) Code() int64 {
	if i.event {
		return 0
	}
	return i.Data.Code
}

// IsEvent reports whether this is an event placeholder.
func (i *Item) IsEvent() bool {
	return i.event
}

// newItem creates an instance of the given catalog item for player.
func newItem(data catalog.ItemData, player int) *Item {
	return &Item{
		Data:           data,
		Player:         player,
		classification: data.Classification,
	}
}

// newEventItem creates the placeholder granted by an event location.
func newEventItem(name string, player int) *Item {
	return &Item{
		Data: catalog.ItemData{
			Name:           name,
			Category:       catalog.CategoryMisc,
			Classification: catalog.ClassProgression,
			Count:          1,
			Skip:           true,
		},
		Player:         player,
		classification: catalog.ClassProgression,
		event:          true,
	}
}
