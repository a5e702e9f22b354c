package sighting

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/plantpal/plantpal-service/internal/season"
)

const (
	reportsCollection = "reports"
	speciesCollection = "species"
)

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository creates a sighting repository backed by Firestore.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) ListReports(ctx context.Context) ([]Report, error) {
	iter := r.client.Collection(reportsCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	reports := make([]Report, 0)
	speciesRefs := make(map[string]*firestore.DocumentRef)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var rep Report
		if err := doc.DataTo(&rep); err != nil {
			return nil, fmt.Errorf("unmarshal report %s: %w", doc.Ref.ID, err)
		}
		rep.ID = doc.Ref.ID
		reports = append(reports, rep)
		if rep.SpeciesID != "" {
			speciesRefs[rep.SpeciesID] = r.client.Collection(speciesCollection).Doc(rep.SpeciesID)
		}
	}
	if len(speciesRefs) == 0 {
		return reports, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(speciesRefs))
	for _, ref := range speciesRefs {
		refs = append(refs, ref)
	}
	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("load species: %w", err)
	}
	species := make(map[string]Species, len(docs))
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		sp, err := speciesFromDoc(doc)
		if err != nil {
			return nil, err
		}
		species[sp.ID] = sp
	}
	for i := range reports {
		if sp, ok := species[reports[i].SpeciesID]; ok {
			reports[i].Species = &sp
		}
	}
	return reports, nil
}

func (r *firestoreRepository) CreateReport(ctx context.Context, report Report) error {
	_, err := r.client.Collection(reportsCollection).Doc(report.ID).Create(ctx, report)
	return err
}

func (r *firestoreRepository) GetSpecies(ctx context.Context, id string) (*Species, error) {
	doc, err := r.client.Collection(speciesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sp, err := speciesFromDoc(doc)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *firestoreRepository) FirstInvasiveSpecies(ctx context.Context) (*Species, error) {
	iter := r.client.Collection(speciesCollection).
		Where("plant_type", "==", string(season.CategoryInvasive)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sp, err := speciesFromDoc(doc)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *firestoreRepository) CountReports(ctx context.Context, userID string) (int, error) {
	return countQuery(ctx, r.client.Collection(reportsCollection).Where("user_id", "==", userID))
}

func (r *firestoreRepository) CountSpecies(ctx context.Context) (int, error) {
	return countQuery(ctx, r.client.Collection(speciesCollection).Query)
}

func countQuery(ctx context.Context, q firestore.Query) (int, error) {
	result, err := q.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	value, ok := result["total"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("count: unexpected aggregation result %T", result["total"])
	}
	return int(value.GetIntegerValue()), nil
}

func speciesFromDoc(doc *firestore.DocumentSnapshot) (Species, error) {
	var sp Species
	if err := doc.DataTo(&sp); err != nil {
		return Species{}, fmt.Errorf("unmarshal species %s: %w", doc.Ref.ID, err)
	}
	sp.ID = doc.Ref.ID
	sp.Category = season.ParseCategory(string(sp.Category))
	return sp, nil
}
