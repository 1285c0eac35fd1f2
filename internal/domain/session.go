package domain

import "time"

type Tab string

const (
	TabProperties Tab = "properties"
	TabVendors    Tab = "vendors"
)

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

type SortOrder string

const (
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
	SortRecent    SortOrder = "recent"
)

// SortOrders is the selector order. The choice is stored but never reorders results.
var SortOrders = []SortOrder{SortPriceAsc, SortPriceDesc, SortRating, SortRecent}

// Session is the whole per-visitor state: UI flags plus the visitor's own copy of the listing store.
type Session struct {
	ID           string     `json:"id"`
	Tab          Tab        `json:"tab"`
	ViewMode     ViewMode   `json:"viewMode"`
	FiltersShown bool       `json:"filtersShown"`
	SearchTerm   string     `json:"searchTerm"`
	Location     string     `json:"location"`
	Category     Category   `json:"category"`
	SortOrder    SortOrder  `json:"sortOrder"`
	Favorites    []string   `json:"favorites"`
	Properties   []Property `json:"properties"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewSession seeds a session in its initial state with a private copy of props.
func NewSession(id string, props []Property, now time.Time) Session {
	own := make([]Property, len(props))
	for i, p := range props {
		own[i] = p.Clone()
	}
	s := Session{
		ID:         id,
		Tab:        TabProperties,
		ViewMode:   ViewGrid,
		Category:   CategoryAll,
		SortOrder:  SortPriceAsc,
		Favorites:  []string{},
		Properties: own,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, p := range own {
		if p.IsFavorite {
			s.Favorites = append(s.Favorites, p.ID)
		}
	}
	return s
}

func (s *Session) IsFavorite(id string) bool {
	for _, f := range s.Favorites {
		if f == id {
			return true
		}
	}
	return false
}

// Clone deep-copies the session so a failed update can be discarded.
func (s Session) Clone() Session {
	out := s
	out.Favorites = append([]string{}, s.Favorites...)
	out.Properties = make([]Property, len(s.Properties))
	for i, p := range s.Properties {
		out.Properties[i] = p.Clone()
	}
	return out
}
