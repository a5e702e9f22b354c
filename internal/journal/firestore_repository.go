package journal

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const entriesCollection = "plant_journal"

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository creates a journal repository backed by Firestore.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) ListEntries(ctx context.Context, userID string) ([]Entry, error) {
	iter := r.client.Collection(entriesCollection).
		Where("user_id", "==", userID).
		OrderBy("identified_date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	entries := make([]Entry, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var e Entry
		if err := doc.DataTo(&e); err != nil {
			return nil, fmt.Errorf("unmarshal journal entry %s: %w", doc.Ref.ID, err)
		}
		e.ID = doc.Ref.ID
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *firestoreRepository) GetEntry(ctx context.Context, id string) (*Entry, error) {
	doc, err := r.client.Collection(entriesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var e Entry
	if err := doc.DataTo(&e); err != nil {
		return nil, fmt.Errorf("unmarshal journal entry: %w", err)
	}
	e.ID = doc.Ref.ID
	return &e, nil
}

func (r *firestoreRepository) CreateEntry(ctx context.Context, entry Entry) error {
	_, err := r.client.Collection(entriesCollection).Doc(entry.ID).Create(ctx, entry)
	return err
}

func (r *firestoreRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	_, err := r.client.Collection(entriesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "is_favorite", Value: favorite},
	})
	if status.Code(err) == codes.NotFound {
		return ErrEntryNotFound
	}
	return err
}

func (r *firestoreRepository) DeleteEntry(ctx context.Context, id string) error {
	_, err := r.client.Collection(entriesCollection).Doc(id).Delete(ctx)
	return err
}
