package alarm

import (
	"errors"
	"fmt"
	"strings"
)

// PagingPolicy selects which paging events count toward StatusSnapshot.Pagings.
type PagingPolicy string

const (
	// PagingAll counts every event of the paging family.
	PagingAll PagingPolicy = "all"
	// PagingSentOnly counts only the initial PagingSentToUser event.
	PagingSentOnly PagingPolicy = "sent"
)

// ErrUnknownPagingPolicy is returned for unsupported paging policy names.
var ErrUnknownPagingPolicy = errors.New("unknown paging policy")

// ParsePagingPolicy converts a config value into a PagingPolicy.
// An empty value selects PagingAll.
func ParsePagingPolicy(s string) (PagingPolicy, error) {
	switch PagingPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PagingAll:
		return PagingAll, nil
	case PagingSentOnly:
		return PagingSentOnly, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownPagingPolicy)
	}
}

// Counts reports whether the policy counts event e as a paging.
func (p PagingPolicy) Counts(e Event) bool {
	if p == PagingSentOnly {
		return e == EventPagingSentToUser
	}

	return e.IsPaging()
}

// Options tunes the aggregations. The zero value counts every paging event
// and excludes no alarm class.
type Options struct {
	// Paging selects which paging events are counted by StatusReplay.
	Paging PagingPolicy
	// ExcludedClasses lists alarm classes ignored by the activation counts.
	ExcludedClasses []string
}

// excluded reports whether class is listed in ExcludedClasses.
func (o Options) excluded(class string) bool {
	for _, c := range o.ExcludedClasses {
		if c == class {
			return true
		}
	}

	return false
}
