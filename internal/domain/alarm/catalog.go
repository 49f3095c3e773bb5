package alarm

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateAlarmID is returned when two definitions share an alarm id.
	ErrDuplicateAlarmID = errors.New("duplicate alarm id")
	// ErrInvalidTimestamp is returned when a log date cannot be parsed.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Catalog resolves alarm ids to their definitions. It is built once and never
// modified afterwards, so it is safe for concurrent readers.
type Catalog struct {
	// byID indexes definitions by alarm id.
	byID map[int]Definition
	// ordered keeps definitions in load order for listing.
	ordered []Definition
}

// NewCatalog indexes the provided definitions by alarm id.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[int]Definition, len(defs)),
		ordered: make([]Definition, 0, len(defs)),
	}

	for _, def := range defs {
		if _, ok := c.byID[def.AlarmID]; ok {
			return nil, fmt.Errorf("alarm %d: %w", def.AlarmID, ErrDuplicateAlarmID)
		}

		c.byID[def.AlarmID] = def
		c.ordered = append(c.ordered, def)
	}

	return c, nil
}

// Lookup returns the definition for id and whether it exists.
func (c *Catalog) Lookup(id int) (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}

	def, ok := c.byID[id]

	return def, ok
}

// Definitions returns a copy of all definitions in load order.
func (c *Catalog) Definitions() []Definition {
	if c == nil {
		return nil
	}

	return append([]Definition(nil), c.ordered...)
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.ordered)
}
