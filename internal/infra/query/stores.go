package query

import (
	"context"

	"github.com/google/uuid"
)

type UpsertStoreParams struct {
	ID      uuid.UUID
	Name    string
	Address string
}

const upsertStore = `INSERT INTO stores (id, name, address) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address`

func (q *Queries) UpsertStore(ctx context.Context, db DBTX, arg UpsertStoreParams) error {
	_, err := db.Exec(ctx, upsertStore, arg.ID, arg.Name, arg.Address)
	return err
}

const listStores = `SELECT id, name, address, created_at FROM stores ORDER BY name, id`

func (q *Queries) ListStores(ctx context.Context, db DBTX) ([]Stores, error) {
	return collectAll[Stores](ctx, db, listStores)
}
