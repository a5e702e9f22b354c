package recipe

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
)

const (
	recipesCollection = "recipes"
	speciesCollection = "species"
)

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository creates a recipe repository backed by Firestore.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) ListRecipes(ctx context.Context) ([]Recipe, error) {
	iter := r.client.Collection(recipesCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	recipes := make([]Recipe, 0)
	refs := make(map[string]*firestore.DocumentRef)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var rec Recipe
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("unmarshal recipe %s: %w", doc.Ref.ID, err)
		}
		rec.ID = doc.Ref.ID
		recipes = append(recipes, rec)
		if rec.SpeciesID != "" {
			refs[rec.SpeciesID] = r.client.Collection(speciesCollection).Doc(rec.SpeciesID)
		}
	}
	if len(refs) == 0 {
		return recipes, nil
	}

	lookup := make([]*firestore.DocumentRef, 0, len(refs))
	for _, ref := range refs {
		lookup = append(lookup, ref)
	}
	docs, err := r.client.GetAll(ctx, lookup)
	if err != nil {
		return nil, fmt.Errorf("load recipe species: %w", err)
	}
	names := make(map[string]string, len(docs))
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		var sp struct {
			Name string `firestore:"name"`
		}
		if err := doc.DataTo(&sp); err != nil {
			return nil, fmt.Errorf("unmarshal species %s: %w", doc.Ref.ID, err)
		}
		names[doc.Ref.ID] = sp.Name
	}
	for i := range recipes {
		if name, ok := names[recipes[i].SpeciesID]; ok {
			recipes[i].Species = &SpeciesRef{ID: recipes[i].SpeciesID, Name: name}
		}
	}
	return recipes, nil
}

func (r *firestoreRepository) CountRecipes(ctx context.Context) (int, error) {
	result, err := r.client.Collection(recipesCollection).NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	value, ok := result["total"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("count recipes: unexpected aggregation result %T", result["total"])
	}
	return int(value.GetIntegerValue()), nil
}
