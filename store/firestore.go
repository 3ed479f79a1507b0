package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore implements Store over a Cloud Firestore client.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

func (s *Firestore) Get(ctx context.Context, col Collection, id string) (Doc, error) {
	snap, err := s.client.Collection(string(col)).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Doc{}, ErrNotFound
		}
		return Doc{}, err
	}
	return Doc{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *Firestore) List(ctx context.Context, col Collection) ([]Doc, error) {
	snaps, err := s.client.Collection(string(col)).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	docs := make([]Doc, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, Doc{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *Firestore) Find(ctx context.Context, col Collection, filters ...Filter) ([]Doc, error) {
	q := s.client.Collection(string(col)).Query
	for _, f := range filters {
		q = q.Where(f.Field, f.Op, f.Value)
	}
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	docs := make([]Doc, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, Doc{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *Firestore) Set(ctx context.Context, col Collection, id string, data map[string]interface{}) error {
	_, err := s.client.Collection(string(col)).Doc(id).Set(ctx, data)
	return err
}

func (s *Firestore) Update(ctx context.Context, col Collection, id string, fields map[string]interface{}) error {
	_, err := s.client.Collection(string(col)).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (s *Firestore) Delete(ctx context.Context, col Collection, id string) error {
	_, err := s.client.Collection(string(col)).Doc(id).Delete(ctx)
	return err
}

func (s *Firestore) Count(ctx context.Context, col Collection, filters ...Filter) (int, error) {
	docs, err := s.Find(ctx, col, filters...)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

func (s *Firestore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(&firestoreTx{client: s.client, tx: tx})
	})
}

// Watch streams one notification per query-snapshot change until the
// context is cancelled or the unregister func is called.
func (s *Firestore) Watch(ctx context.Context, col Collection) (<-chan struct{}, func()) {
	ctx, cancel := context.WithCancel(ctx)
	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		it := s.client.Collection(string(col)).Snapshots(ctx)
		defer it.Stop()
		for {
			if _, err := it.Next(); err != nil {
				return
			}
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}()
	return ch, cancel
}

type firestoreTx struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (t *firestoreTx) ref(col Collection, id string) *firestore.DocumentRef {
	return t.client.Collection(string(col)).Doc(id)
}

func (t *firestoreTx) Get(col Collection, id string) (Doc, error) {
	snap, err := t.tx.Get(t.ref(col, id))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Doc{}, ErrNotFound
		}
		return Doc{}, err
	}
	return Doc{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (t *firestoreTx) Set(col Collection, id string, data map[string]interface{}) error {
	return t.tx.Set(t.ref(col, id), data)
}

func (t *firestoreTx) Update(col Collection, id string, fields map[string]interface{}) error {
	return t.tx.Set(t.ref(col, id), fields, firestore.MergeAll)
}

func (t *firestoreTx) Delete(col Collection, id string) error {
	return t.tx.Delete(t.ref(col, id))
}
