package app

import (
	"fmt"
	"strings"
	"time"

	"pms_marketplace/internal/domain"
)

const WelcomeMessage = "Welcome to PMS Marketplace!"

// Apply runs one interaction against s and returns the notifications it produced.
// It never performs I/O. On error s is left untouched.
func Apply(s *domain.Session, vendors []domain.Vendor, a domain.Action, now time.Time) ([]domain.Notification, error) {
	var out []domain.Notification
	switch a.Type {
	case domain.ActionSetSearch:
		s.SearchTerm = a.Value
	case domain.ActionSetLocation:
		s.Location = a.Value
	case domain.ActionSetTab:
		t := domain.Tab(a.Value)
		if t != domain.TabProperties && t != domain.TabVendors {
			return nil, fmt.Errorf("%w: tab %q", domain.ErrInvalidAction, a.Value)
		}
		s.Tab = t
	case domain.ActionSetViewMode:
		m := domain.ViewMode(a.Value)
		if m != domain.ViewGrid && m != domain.ViewList {
			return nil, fmt.Errorf("%w: view mode %q", domain.ErrInvalidAction, a.Value)
		}
		s.ViewMode = m
	case domain.ActionToggleViewMode:
		if s.ViewMode == domain.ViewGrid {
			s.ViewMode = domain.ViewList
		} else {
			s.ViewMode = domain.ViewGrid
		}
	case domain.ActionToggleFilters:
		s.FiltersShown = !s.FiltersShown
	case domain.ActionSelectCategory:
		c, err := ParseCategory(a.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: category %q", domain.ErrInvalidAction, a.Value)
		}
		s.Category = c
	case domain.ActionSetSort:
		o, ok := parseSort(a.Value)
		if !ok {
			return nil, fmt.Errorf("%w: sort %q", domain.ErrInvalidAction, a.Value)
		}
		s.SortOrder = o
	case domain.ActionToggleFavorite:
		if n, ok := ToggleFavorite(s, a.Target); ok {
			out = append(out, n)
		}
	case domain.ActionViewDetails:
		if i := findProperty(s.Properties, a.Target); i >= 0 {
			out = append(out, domain.Notification{
				Kind:    domain.NotifySuccess,
				Message: fmt.Sprintf("Viewing details for \"%s\"", s.Properties[i].Title),
				Subject: a.Target,
			})
		}
	case domain.ActionContactVendor:
		n, ok, err := contactVendor(vendors, a)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, n)
		}
	default:
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidAction, a.Type)
	}

	s.UpdatedAt = now
	for i := range out {
		out[i].SessionID = s.ID
		out[i].At = now
	}
	return out, nil
}

// ToggleFavorite flips the favorite flag of property id and keeps the favorites set in step.
// Unknown ids are ignored (ok=false).
func ToggleFavorite(s *domain.Session, id string) (domain.Notification, bool) {
	i := findProperty(s.Properties, id)
	if i < 0 {
		return domain.Notification{}, false
	}
	p := &s.Properties[i]
	p.IsFavorite = !p.IsFavorite

	msg := fmt.Sprintf("Added \"%s\" to favorites", p.Title)
	if p.IsFavorite {
		if !s.IsFavorite(id) {
			s.Favorites = append(s.Favorites, id)
		}
	} else {
		kept := s.Favorites[:0]
		for _, f := range s.Favorites {
			if f != id {
				kept = append(kept, f)
			}
		}
		s.Favorites = kept
		msg = fmt.Sprintf("Removed \"%s\" from favorites", p.Title)
	}
	return domain.Notification{Kind: domain.NotifySuccess, Message: msg, Subject: id}, true
}

func contactVendor(vendors []domain.Vendor, a domain.Action) (domain.Notification, bool, error) {
	ch := a.Channel
	if ch == "" {
		ch = domain.ContactChannel(a.Value)
	}
	var format string
	switch ch {
	case domain.ContactCall:
		format = "Calling %s..."
	case domain.ContactEmail:
		format = "Opening email to %s..."
	case domain.ContactProfile:
		format = "Viewing %s profile..."
	default:
		return domain.Notification{}, false, fmt.Errorf("%w: channel %q", domain.ErrInvalidAction, ch)
	}
	v, ok := findVendor(vendors, a.Target)
	if !ok {
		return domain.Notification{}, false, nil
	}
	return domain.Notification{Kind: domain.NotifySuccess, Message: fmt.Sprintf(format, v.Name), Subject: v.ID}, true, nil
}

func parseSort(s string) (domain.SortOrder, bool) {
	o := domain.SortOrder(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range domain.SortOrders {
		if v == o {
			return o, true
		}
	}
	return "", false
}
