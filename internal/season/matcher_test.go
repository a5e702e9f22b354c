package season

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

func sampleCatalog() []Plant {
	return []Plant{
		{ID: "1", CommonName: "Chickweed", MonthsActive: []int{3, 4, 10, 11}, Category: CategoryEdible},
		{ID: "2", CommonName: "Dandelion", MonthsActive: []int{4, 5, 6, 7, 8, 9}, Category: CategoryEdible},
		{ID: "3", CommonName: "English Ivy", MonthsActive: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, Category: CategoryInvasive},
		{ID: "4", CommonName: "Ghost", MonthsActive: nil},
		{ID: "5", CommonName: "Snowdrop", MonthsActive: []int{1, 2, 2}, Category: CategoryOrnamental},
		{ID: "6", CommonName: "Witch Hazel", MonthsActive: []int{12}, Category: CategoryMedicinal},
	}
}

func ids(plants []Plant) []string {
	out := make([]string, len(plants))
	for i, p := range plants {
		out[i] = p.ID
	}
	return out
}

func TestPlantsActiveInMonth(t *testing.T) {
	catalog := sampleCatalog()
	tests := []struct {
		month int
		want  []string
	}{
		{1, []string{"3", "5"}},
		{4, []string{"1", "2", "3"}},
		{8, []string{"2", "3"}},
		{12, []string{"3", "6"}},
	}
	for _, tt := range tests {
		got, err := PlantsActiveInMonth(catalog, tt.month)
		if err != nil {
			t.Fatalf("month %d: unexpected error %v", tt.month, err)
		}
		if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
			t.Fatalf("month %d mismatch (-want +got):\n%s", tt.month, diff)
		}
	}
}

func TestPlantsActiveInMonthContainsExactlyMatchingPlants(t *testing.T) {
	catalog := sampleCatalog()
	for m := 1; m <= 12; m++ {
		got, err := PlantsActiveInMonth(catalog, m)
		if err != nil {
			t.Fatalf("month %d: %v", m, err)
		}
		included := make(map[string]bool, len(got))
		for _, p := range got {
			if !p.ActiveIn(m) {
				t.Fatalf("month %d: %s is not active", m, p.CommonName)
			}
			included[p.ID] = true
		}
		for _, p := range catalog {
			if p.ActiveIn(m) && !included[p.ID] {
				t.Fatalf("month %d: %s missing", m, p.CommonName)
			}
		}
	}
}

func TestPlantsActiveInMonthRejectsOutOfRange(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		_, err := PlantsActiveInMonth(sampleCatalog(), m)
		if !errors.Is(err, ErrInvalidMonth) || !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("month %d: expected invalid argument, got %v", m, err)
		}
	}
}

func TestPlantsActiveInSeasonIsUnionOfMonths(t *testing.T) {
	catalog := sampleCatalog()
	for _, s := range Seasons {
		got, err := PlantsActiveInSeason(catalog, s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}

		seen := map[string]bool{}
		for _, m := range s.Months() {
			month, _ := PlantsActiveInMonth(catalog, m)
			for _, p := range month {
				seen[p.ID] = true
			}
		}
		var want []string
		for _, p := range catalog {
			if seen[p.ID] {
				want = append(want, p.ID)
			}
		}
		if diff := cmp.Diff(want, ids(got)); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", s, diff)
		}
	}
}

func TestPlantsActiveInSeasonWinterWrapsYear(t *testing.T) {
	got, err := PlantsActiveInSeason(sampleCatalog(), Winter)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"3", "5", "6"}, ids(got)); diff != "" {
		t.Fatalf("winter mismatch (-want +got):\n%s", diff)
	}
}

func TestPlantsActiveInSeasonRejectsUnknown(t *testing.T) {
	_, err := PlantsActiveInSeason(sampleCatalog(), Season("monsoon"))
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestMatcherEmptyCatalogAndPurity(t *testing.T) {
	got, err := PlantsActiveInMonth(nil, 5)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v, %v", got, err)
	}
	got, err = PlantsActiveInSeason([]Plant{}, Summer)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v, %v", got, err)
	}

	catalog := sampleCatalog()
	before := sampleCatalog()
	first, _ := PlantsActiveInSeason(catalog, Spring)
	second, _ := PlantsActiveInSeason(catalog, Spring)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeat call differs:\n%s", diff)
	}
	if diff := cmp.Diff(before, catalog); diff != "" {
		t.Fatalf("catalog mutated:\n%s", diff)
	}
}

func TestParseSeasonAndSeasonOf(t *testing.T) {
	s, err := ParseSeason(" Fall ")
	if err != nil || s != Fall {
		t.Fatalf("ParseSeason: got %q, %v", s, err)
	}
	if _, err := ParseSeason("autumn"); !errors.Is(err, ErrUnknownSeason) {
		t.Fatalf("expected unknown season, got %v", err)
	}

	want := map[int]Season{1: Winter, 2: Winter, 3: Spring, 6: Summer, 9: Fall, 11: Fall, 12: Winter}
	for m, w := range want {
		if got, err := SeasonOf(m); err != nil || got != w {
			t.Fatalf("SeasonOf(%d) = %q, %v; want %q", m, got, err, w)
		}
	}
	if _, err := SeasonOf(13); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected invalid month, got %v", err)
	}
}

func TestPlantHelpers(t *testing.T) {
	p := Plant{MonthsActive: []int{11, 2, 2, 5}}
	if diff := cmp.Diff([]int{2, 5, 11}, p.SortedMonths()); diff != "" {
		t.Fatalf("SortedMonths mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]int{11, 2, 2, 5}, p.MonthsActive); diff != "" {
		t.Fatalf("SortedMonths mutated plant:\n%s", diff)
	}

	if ParseCategory("Edible") != CategoryEdible || ParseCategory("weed") != CategoryUnspecified {
		t.Fatalf("unexpected ParseCategory results")
	}
}
