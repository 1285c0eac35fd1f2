package notify

import (
	"context"
	"errors"

	"pms_marketplace/internal/domain"
)

// Fanout delivers to every sink and joins their errors.
type Fanout []domain.Notifier

func (f Fanout) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, s := range f {
		if s == nil {
			continue
		}
		if err := s.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
