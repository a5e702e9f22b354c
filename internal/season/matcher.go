package season

import (
	"fmt"
	"strings"
)

// Season is one of the four fixed three-month buckets.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

// Seasons lists the buckets in calendar order starting from spring.
var Seasons = []Season{Spring, Summer, Fall, Winter}

var seasonMonths = map[Season][3]int{
	Spring: {3, 4, 5},
	Summer: {6, 7, 8},
	Fall:   {9, 10, 11},
	Winter: {12, 1, 2},
}

// ParseSeason accepts a season name case-insensitively.
func ParseSeason(raw string) (Season, error) {
	s := Season(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := seasonMonths[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeason, raw)
	}
	return s, nil
}

// Months returns the three months of s, or nil for an unknown season.
func (s Season) Months() []int {
	m, ok := seasonMonths[s]
	if !ok {
		return nil
	}
	return m[:]
}

// SeasonOf returns the season that contains month.
func SeasonOf(month int) (Season, error) {
	if err := checkMonth(month); err != nil {
		return "", err
	}
	for _, s := range Seasons {
		for _, m := range seasonMonths[s] {
			if m == month {
				return s, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidMonth, month)
}

// PlantsActiveInMonth returns the plants whose active months contain month, in catalog order.
func PlantsActiveInMonth(catalog []Plant, month int) ([]Plant, error) {
	if err := checkMonth(month); err != nil {
		return nil, err
	}
	out := make([]Plant, 0, len(catalog))
	for _, p := range catalog {
		if p.ActiveIn(month) {
			out = append(out, p)
		}
	}
	return out, nil
}

// PlantsActiveInSeason returns the plants active in at least one month of season, in catalog order.
func PlantsActiveInSeason(catalog []Plant, season Season) ([]Plant, error) {
	months, ok := seasonMonths[season]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeason, season)
	}
	out := make([]Plant, 0, len(catalog))
	for _, p := range catalog {
		for _, m := range months {
			if p.ActiveIn(m) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func checkMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	return nil
}
