package season

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const plantsCollection = "seasonal_plants"

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository creates a catalog repository backed by Firestore.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) ListPlants(ctx context.Context) ([]Plant, error) {
	iter := r.client.Collection(plantsCollection).
		OrderBy("common_name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	plants := make([]Plant, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var p Plant
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("unmarshal plant %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		p.Category = ParseCategory(string(p.Category))
		plants = append(plants, p)
	}
	return plants, nil
}
