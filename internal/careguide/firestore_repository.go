package careguide

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const guidesCollection = "plant_care_guides"

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository creates a care guide repository backed by Firestore.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) ListGuides(ctx context.Context) ([]Guide, error) {
	iter := r.client.Collection(guidesCollection).OrderBy("plant_name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	guides := make([]Guide, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var g Guide
		if err := doc.DataTo(&g); err != nil {
			return nil, fmt.Errorf("unmarshal care guide %s: %w", doc.Ref.ID, err)
		}
		g.ID = doc.Ref.ID
		guides = append(guides, g)
	}
	return guides, nil
}
