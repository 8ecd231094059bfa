package firestore

import (
	"context"

	"refuge/internal/domain/entity"
	"refuge/internal/errors"
	"refuge/internal/live"

	gcfirestore "cloud.google.com/go/firestore"
)

func decodeAnimal(snap *gcfirestore.DocumentSnapshot) (*entity.Animal, error) {
	var m animalModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "decode %s", snap.Ref.Path)
	}

	return m.toEntity(snap.Ref.ID), nil
}

func decodeRequest(snap *gcfirestore.DocumentSnapshot) (*entity.AdoptionRequest, error) {
	var m requestModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "decode %s", snap.Ref.Path)
	}

	return m.toEntity(snap.Ref.ID), nil
}

func decodeProfile(snap *gcfirestore.DocumentSnapshot) (*entity.UserProfile, error) {
	var m profileModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "decode %s", snap.Ref.Path)
	}

	return m.toEntity(snap.Ref.ID), nil
}

// watchQuery streams full snapshots of the documents matching q.
func watchQuery[T any](ctx context.Context, q gcfirestore.Query, op string, decode func(*gcfirestore.DocumentSnapshot) (T, error)) *live.Feed[[]T] {
	return live.Start(ctx, func(ctx context.Context, emit func([]T) bool) error {
		it := q.Snapshots(ctx)
		defer it.Stop()

		for {
			qs, err := it.Next()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}

				return backingError(op, err)
			}

			snaps, err := qs.Documents.GetAll()
			if err != nil {
				return backingError(op, err)
			}

			out := make([]T, 0, len(snaps))
			for _, snap := range snaps {
				v, err := decode(snap)
				if err != nil {
					return backingError(op, err)
				}
				out = append(out, v)
			}

			if !emit(out) {
				return nil
			}
		}
	})
}

// watchDocument streams one document. While it does not exist, absent decides
// what to emit; returning false skips the emission.
func watchDocument[T any](ctx context.Context, ref *gcfirestore.DocumentRef, op string,
	decode func(*gcfirestore.DocumentSnapshot) (T, error), absent func() (T, bool)) *live.Feed[T] {
	return live.Start(ctx, func(ctx context.Context, emit func(T) bool) error {
		it := ref.Snapshots(ctx)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}

				return backingError(op, err)
			}

			if !snap.Exists() {
				v, send := absent()
				if send && !emit(v) {
					return nil
				}

				continue
			}

			v, err := decode(snap)
			if err != nil {
				return backingError(op, err)
			}
			if !emit(v) {
				return nil
			}
		}
	})
}
