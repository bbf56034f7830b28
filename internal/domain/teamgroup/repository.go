package teamgroup

import "context"

type Repository interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	List(ctx context.Context) ([]Group, error)
	Save(ctx context.Context, group Group) error
	Delete(ctx context.Context, name string) error
}
