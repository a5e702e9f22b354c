package journal

import (
	"strings"

	"github.com/plantpal/plantpal-service/internal/season"
)

// ParseFilter normalizes a raw query and kind. An empty kind means all entries.
func ParseFilter(query, kind string) (Filter, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	switch kind {
	case "", KindAll:
		kind = KindAll
	case KindFavorites:
	default:
		if season.ParseCategory(kind) == season.CategoryUnspecified {
			return Filter{}, ErrInvalidFilter
		}
	}
	return Filter{Query: strings.TrimSpace(query), Kind: kind}, nil
}

// Apply returns the entries matching f, preserving order.
func (f Filter) Apply(entries []Entry) []Entry {
	needle := strings.ToLower(f.Query)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if needle != "" && !matchesQuery(e, needle) {
			continue
		}
		switch f.Kind {
		case "", KindAll:
		case KindFavorites:
			if !e.Favorite {
				continue
			}
		default:
			if string(e.Category) != f.Kind {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(e Entry, needle string) bool {
	for _, field := range []string{e.PlantName, e.CommonName, e.ScientificName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Summarize counts entries by the journal headline buckets.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		if e.Favorite {
			s.Favorites++
		}
		switch e.Category {
		case season.CategoryEdible:
			s.Edible++
		case season.CategoryMedicinal:
			s.Medicinal++
		}
	}
	return s
}
