package domain

import (
	"context"
	"time"
)

type CatalogRepository interface {
	// Write paths
	UpsertProperty(ctx context.Context, p Property) error
	UpsertVendor(ctx context.Context, v Vendor) error

	// Read paths, in catalog order
	ListProperties(ctx context.Context) ([]Property, error)
	ListVendors(ctx context.Context) ([]Vendor, error)
}

type SessionStore interface {
	Get(ctx context.Context, id string) (Session, error) // ErrNotFound when absent or expired
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Notifier is the side channel for toast-style feedback.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
