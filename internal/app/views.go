package app

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pms_marketplace/internal/domain"
)

// Read models returned to clients. They carry everything a renderer needs and nothing it has to compute.

type PageView struct {
	SessionID    string             `json:"sessionId"`
	Title        string             `json:"title"`
	Subtitle     string             `json:"subtitle"`
	Search       string             `json:"search"`
	Location     string             `json:"location"`
	Tab          domain.Tab         `json:"tab"`
	ViewMode     domain.ViewMode    `json:"viewMode"`
	FiltersShown bool               `json:"filtersShown"`
	Tabs         []TabView          `json:"tabs"`
	Favorites    []string           `json:"favorites"`
	FilterPanel  *FilterPanel       `json:"filterPanel,omitempty"`
	Properties   *PropertiesSection `json:"properties,omitempty"`
	Vendors      *VendorsSection    `json:"vendors,omitempty"`
}

type TabView struct {
	ID     domain.Tab `json:"id"`
	Name   string     `json:"name"`
	Count  int        `json:"count"`
	Active bool       `json:"active"`
}

type EmptyState struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

type PriceBounds struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// FilterPanel lists the advanced filter controls. They are informational only.
type FilterPanel struct {
	PropertyTypes  []Option    `json:"propertyTypes"`
	PriceRange     PriceBounds `json:"priceRange"`
	BedroomOptions []Option    `json:"bedroomOptions"`
	Amenities      []string    `json:"amenities"`
}

type PropertiesSection struct {
	Featured    []FeaturedCard `json:"featured"`
	Heading     string         `json:"heading"`
	SortOptions []Option       `json:"sortOptions"`
	Items       []PropertyCard `json:"items"`
	Empty       *EmptyState    `json:"empty,omitempty"`
}

type FeaturedCard struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Location   string  `json:"location"`
	Rating     float64 `json:"rating"`
	PriceLabel string  `json:"priceLabel"`
	IsFavorite bool    `json:"isFavorite"`
}

type OwnerBadge struct {
	Name     string `json:"name"`
	Initial  string `json:"initial"`
	Verified bool   `json:"verified"`
}

type PropertyCard struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Location     string              `json:"location"`
	PropertyType domain.PropertyType `json:"propertyType"`
	PriceLabel   string              `json:"priceLabel"`
	Bedrooms     *int                `json:"bedrooms,omitempty"`
	Bathrooms    *int                `json:"bathrooms,omitempty"`
	AreaLabel    string              `json:"areaLabel"`
	Rating       float64             `json:"rating"`
	ReviewCount  int                 `json:"reviewCount"`
	Amenities    []string            `json:"amenities"`
	Owner        OwnerBadge          `json:"owner"`
	Featured     bool                `json:"featured"`
	IsFavorite   bool                `json:"isFavorite"`
}

type VendorsSection struct {
	Categories []CategoryOption `json:"categories"`
	Items      []VendorCard     `json:"items"`
	Empty      *EmptyState      `json:"empty,omitempty"`
}

type VendorCard struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	Category      domain.Category           `json:"category"`
	Description   string                    `json:"description"`
	Location      string                    `json:"location"`
	Rating        float64                   `json:"rating"`
	ReviewCount   int                       `json:"reviewCount"`
	Verified      bool                      `json:"verified"`
	Services      []string                  `json:"services"`
	MoreServices  int                       `json:"moreServices,omitempty"`
	PriceRange    domain.PriceRange         `json:"priceRange"`
	Availability  domain.VendorAvailability `json:"availability"`
	ResponseLabel string                    `json:"responseLabel"`
	Contact       domain.Contact            `json:"contact"`
}

const maxCardServices = 4

var (
	sortLabels = map[domain.SortOrder]string{
		domain.SortPriceAsc:  "Price: Low to High",
		domain.SortPriceDesc: "Price: High to Low",
		domain.SortRating:    "Rating",
		domain.SortRecent:    "Recently Added",
	}
	bedroomOptions = []Option{
		{Value: "1", Label: "1 Bedroom"},
		{Value: "2", Label: "2 Bedrooms"},
		{Value: "3", Label: "3 Bedrooms"},
		{Value: "4", Label: "4+ Bedrooms"},
	}
	amenitiesList = []string{
		"WiFi", "Pool", "Gym", "Parking", "Beach Access",
		"Air Conditioning", "Kitchen", "Balcony", "Pet Friendly",
	}
	currencySymbols = map[string]string{"EUR": "€", "USD": "$", "GBP": "£"}
)

// BuildPageView derives the page for s. Sections for the inactive tab are omitted.
func BuildPageView(s domain.Session, vendors []domain.Vendor) PageView {
	filtered := FilterProperties(s.Properties, s.SearchTerm, s.Location)
	pv := PageView{
		SessionID:    s.ID,
		Title:        "PMS Marketplace",
		Subtitle:     "Discover properties and connect with vendors",
		Search:       s.SearchTerm,
		Location:     s.Location,
		Tab:          s.Tab,
		ViewMode:     s.ViewMode,
		FiltersShown: s.FiltersShown,
		Favorites:    append([]string{}, s.Favorites...),
		Tabs: []TabView{
			{ID: domain.TabProperties, Name: "Properties", Count: len(filtered), Active: s.Tab == domain.TabProperties},
			{ID: domain.TabVendors, Name: "Vendors", Count: len(vendors), Active: s.Tab == domain.TabVendors},
		},
	}
	if s.FiltersShown {
		pv.FilterPanel = buildFilterPanel()
	}

	switch s.Tab {
	case domain.TabVendors:
		pv.Vendors = BuildVendorsSection(vendors, s.Category)
	default:
		sec := &PropertiesSection{
			Featured:    []FeaturedCard{},
			Heading:     fmt.Sprintf("All Properties (%d)", len(filtered)),
			SortOptions: sortOptions(s.SortOrder),
			Items:       make([]PropertyCard, 0, len(filtered)),
		}
		for _, p := range Featured(s.Properties) {
			sec.Featured = append(sec.Featured, FeaturedCard{
				ID: p.ID, Title: p.Title, Location: p.Location, Rating: p.Rating,
				PriceLabel: FormatPrice(p.Price, p.Currency, p.PriceType),
				IsFavorite: p.IsFavorite,
			})
		}
		for _, p := range filtered {
			sec.Items = append(sec.Items, NewPropertyCard(p))
		}
		if len(filtered) == 0 {
			sec.Empty = &EmptyState{Title: "No properties found", Hint: "Try adjusting your search criteria"}
		}
		pv.Properties = sec
	}
	return pv
}

// BuildVendorsSection renders the vendor tab for the selected category.
func BuildVendorsSection(vendors []domain.Vendor, selected domain.Category) *VendorsSection {
	filtered := FilterVendors(vendors, selected)
	sec := &VendorsSection{
		Categories: CategoryCounts(vendors, selected),
		Items:      make([]VendorCard, 0, len(filtered)),
	}
	for _, v := range filtered {
		sec.Items = append(sec.Items, NewVendorCard(v))
	}
	if len(filtered) == 0 {
		sec.Empty = &EmptyState{Title: "No vendors found", Hint: "Try selecting a different category"}
	}
	return sec
}

func NewPropertyCard(p domain.Property) PropertyCard {
	initial := ""
	if r := []rune(p.Owner.Name); len(r) > 0 {
		initial = string(r[0])
	}
	return PropertyCard{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Location:     p.Location,
		PropertyType: p.PropertyType,
		PriceLabel:   FormatPrice(p.Price, p.Currency, p.PriceType),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		AreaLabel:    fmt.Sprintf("%d m²", p.Area),
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		Amenities:    append([]string{}, p.Amenities...),
		Owner:        OwnerBadge{Name: p.Owner.Name, Initial: initial, Verified: p.Owner.Verified},
		Featured:     p.Featured,
		IsFavorite:   p.IsFavorite,
	}
}

func NewVendorCard(v domain.Vendor) VendorCard {
	services := v.Services
	more := 0
	if len(services) > maxCardServices {
		more = len(services) - maxCardServices
		services = services[:maxCardServices]
	}
	return VendorCard{
		ID:            v.ID,
		Name:          v.Name,
		Category:      v.Category,
		Description:   v.Description,
		Location:      v.Location,
		Rating:        v.Rating,
		ReviewCount:   v.ReviewCount,
		Verified:      v.Verified,
		Services:      append([]string{}, services...),
		MoreServices:  more,
		PriceRange:    v.PriceRange,
		Availability:  v.Availability,
		ResponseLabel: "Responds " + strings.ToLower(v.ResponseTime),
		Contact:       v.Contact,
	}
}

// FormatPrice renders a whole-unit amount with grouping and the price-type suffix, e.g. "€1,800/month".
func FormatPrice(price float64, currency string, pt domain.PriceType) string {
	p := message.NewPrinter(language.English)
	amount := p.Sprintf("%d", int64(math.Round(price)))
	sym, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		sym = strings.ToUpper(currency) + " "
	}
	out := sym + amount
	switch pt {
	case domain.PricePerNight:
		return out + "/night"
	case domain.PricePerMonth:
		return out + "/month"
	default:
		return out
	}
}

func sortOptions(selected domain.SortOrder) []Option {
	out := make([]Option, 0, len(domain.SortOrders))
	for _, o := range domain.SortOrders {
		out = append(out, Option{Value: string(o), Label: sortLabels[o], Selected: o == selected})
	}
	return out
}

func buildFilterPanel() *FilterPanel {
	types := make([]Option, 0, len(domain.PropertyTypes))
	for _, t := range domain.PropertyTypes {
		label := string(t)
		types = append(types, Option{Value: label, Label: strings.ToUpper(label[:1]) + label[1:]})
	}
	return &FilterPanel{
		PropertyTypes:  types,
		PriceRange:     PriceBounds{Min: 0, Max: 10000, Currency: "EUR"},
		BedroomOptions: append([]Option{}, bedroomOptions...),
		Amenities:      append([]string{}, amenitiesList...),
	}
}
