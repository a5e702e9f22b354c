package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantpal/plantpal-service/internal/season"
	"github.com/plantpal/plantpal-service/internal/support"
	apperrors "github.com/plantpal/plantpal-service/pkg/errors"
)

type sequenceIDs struct{ next []string }

func (s *sequenceIDs) NewID() string {
	id := s.next[0]
	s.next = s.next[1:]
	return id
}

var baseTime = time.Date(2026, time.May, 4, 10, 0, 0, 0, time.UTC)

func seedEntries() []Entry {
	return []Entry{
		{ID: "e1", UserID: "u1", PlantName: "Taraxacum", CommonName: "Dandelion", ScientificName: "Taraxacum officinale", IdentifiedDate: baseTime.Add(-48 * time.Hour), Category: season.CategoryEdible},
		{ID: "e2", UserID: "u1", PlantName: "Chamomile", IdentifiedDate: baseTime.Add(-24 * time.Hour), Favorite: true, Category: season.CategoryMedicinal},
		{ID: "e3", UserID: "u1", PlantName: "Wild Garlic", CommonName: "Ramsons", IdentifiedDate: baseTime, Favorite: true, Category: season.CategoryEdible},
		{ID: "e4", UserID: "u2", PlantName: "Japanese Knotweed", IdentifiedDate: baseTime, Category: season.CategoryInvasive},
	}
}

func newTestService(t *testing.T, repo Repository, ids ...string) *Service {
	t.Helper()
	svc, err := NewService(repo, support.FixedClock(baseTime), &sequenceIDs{next: ids})
	require.NoError(t, err)
	return svc
}

func entryIDs(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestListNewestFirstWithSummary(t *testing.T) {
	svc := newTestService(t, NewMemoryRepository(seedEntries()...))

	listing, err := svc.List(context.Background(), "u1", Filter{Kind: KindAll})
	require.NoError(t, err)

	assert.Equal(t, []string{"e3", "e2", "e1"}, entryIDs(listing.Entries))
	assert.Equal(t, Summary{Total: 3, Favorites: 2, Edible: 2, Medicinal: 1}, listing.Summary)
}

func TestListFilters(t *testing.T) {
	svc := newTestService(t, NewMemoryRepository(seedEntries()...))

	tests := []struct {
		name  string
		query string
		kind  string
		want  []string
	}{
		{name: "favorites", kind: "favorites", want: []string{"e3", "e2"}},
		{name: "category", kind: "Edible", want: []string{"e3", "e1"}},
		{name: "query on common name", query: "dandel", want: []string{"e1"}},
		{name: "query on scientific name", query: "OFFICINALE", want: []string{"e1"}},
		{name: "query and favorites", query: "garlic", kind: "favorites", want: []string{"e3"}},
		{name: "no match", query: "oak", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := ParseFilter(tt.query, tt.kind)
			require.NoError(t, err)

			listing, err := svc.List(context.Background(), "u1", filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entryIDs(listing.Entries))
			assert.Equal(t, 3, listing.Summary.Total, "summary ignores filter")
		})
	}
}

func TestParseFilterRejectsUnknownKind(t *testing.T) {
	_, err := ParseFilter("", "trees")
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	f, err := ParseFilter("  mint ", "")
	require.NoError(t, err)
	assert.Equal(t, Filter{Query: "mint", Kind: KindAll}, f)
}

func TestCreate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(t, repo, "new-1")
	score := 0.92

	entry, err := svc.Create(context.Background(), "u1", NewEntry{
		PlantName:       "  Stinging Nettle ",
		ConfidenceScore: &score,
		Category:        season.CategoryMedicinal,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-1", entry.ID)
	assert.Equal(t, "Stinging Nettle", entry.PlantName)
	assert.Equal(t, baseTime, entry.IdentifiedDate)
	assert.False(t, entry.Favorite)

	stored, err := repo.GetEntry(context.Background(), "new-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *entry, *stored)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t, NewMemoryRepository(), "unused")
	bad := 1.5

	_, err := svc.Create(context.Background(), "u1", NewEntry{PlantName: " "})
	assert.ErrorIs(t, err, ErrMissingPlantName)

	_, err = svc.Create(context.Background(), "u1", NewEntry{PlantName: "Mint", ConfidenceScore: &bad})
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = svc.Create(context.Background(), "", NewEntry{PlantName: "Mint"})
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestToggleFavorite(t *testing.T) {
	repo := NewMemoryRepository(seedEntries()...)
	svc := newTestService(t, repo)

	entry, err := svc.ToggleFavorite(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.True(t, entry.Favorite)

	entry, err = svc.ToggleFavorite(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.False(t, entry.Favorite)

	stored, _ := repo.GetEntry(context.Background(), "e1")
	assert.False(t, stored.Favorite)
}

func TestOwnershipIsEnforced(t *testing.T) {
	repo := NewMemoryRepository(seedEntries()...)
	svc := newTestService(t, repo)

	_, err := svc.ToggleFavorite(context.Background(), "u1", "e4")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	err = svc.Delete(context.Background(), "u1", "e4")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stored, _ := repo.GetEntry(context.Background(), "e4")
	assert.NotNil(t, stored, "other user's entry must survive")

	err = svc.Delete(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewMemoryRepository(seedEntries()...)
	svc := newTestService(t, repo)

	require.NoError(t, svc.Delete(context.Background(), "u1", "e2"))

	listing, err := svc.List(context.Background(), "u1", Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"e3", "e1"}, entryIDs(listing.Entries))
}

type failingRepo struct {
	Repository
	err error
}

func (f failingRepo) ListEntries(context.Context, string) ([]Entry, error) { return nil, f.err }

func TestListPropagatesRepositoryErrors(t *testing.T) {
	wantErr := errors.New("journal store down")
	svc := newTestService(t, failingRepo{err: wantErr})

	_, err := svc.List(context.Background(), "u1", Filter{})
	assert.ErrorIs(t, err, wantErr)
}
