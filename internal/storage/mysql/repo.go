package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pms_marketplace/internal/domain"
)

// Repo is the MySQL catalog. Each row keeps the full record in a JSON doc
// column next to the few columns used for indexing.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertProperty(ctx context.Context, p domain.Property) error {
	p.IsFavorite = false // favorites live in sessions, never in the catalog
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertPropertySQL,
		p.ID,
		p.Title,
		p.Location,
		p.Price,
		p.Currency,
		string(p.PriceType),
		string(p.PropertyType),
		p.Featured,
		string(doc),
	)
	return err
}

func (r *Repo) UpsertVendor(ctx context.Context, v domain.Vendor) error {
	if !v.Category.Valid() {
		return fmt.Errorf("vendor %s category %q: %w", v.ID, v.Category, domain.ErrInvalidCategory)
	}
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertVendorSQL, v.ID, v.Name, string(v.Category), string(doc))
	return err
}

func (r *Repo) ListProperties(ctx context.Context) ([]domain.Property, error) {
	out := []domain.Property{}
	err := r.scanDocs(ctx, listPropertiesSQL, func(b []byte) error {
		var p domain.Property
		if err := json.Unmarshal(b, &p); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

func (r *Repo) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	out := []domain.Vendor{}
	err := r.scanDocs(ctx, listVendorsSQL, func(b []byte) error {
		var v domain.Vendor
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	return out, err
}

func (r *Repo) scanDocs(ctx context.Context, query string, each func([]byte) error) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var raw sql.RawBytes
		if err := rows.Scan(&raw); err != nil {
			return err
		}
		if err := each(raw); err != nil {
			return fmt.Errorf("decode catalog row: %w", err)
		}
	}
	return rows.Err()
}
