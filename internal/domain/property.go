package domain

type PriceType string

const (
	PricePerNight PriceType = "per_night"
	PricePerMonth PriceType = "per_month"
	PriceSale     PriceType = "sale"
)

type PropertyType string

const (
	PropertyHotel     PropertyType = "hotel"
	PropertyVilla     PropertyType = "villa"
	PropertyApartment PropertyType = "apartment"
	PropertyResort    PropertyType = "resort"
	PropertyHostel    PropertyType = "hostel"
)

// PropertyTypes is the selector order used by the filter panel.
var PropertyTypes = []PropertyType{PropertyHotel, PropertyVilla, PropertyApartment, PropertyResort, PropertyHostel}

func (t PropertyType) Valid() bool {
	for _, v := range PropertyTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (t PriceType) Valid() bool {
	return t == PricePerNight || t == PricePerMonth || t == PriceSale
}

type Owner struct {
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar"`
	Rating   float64 `json:"rating"`
	Verified bool    `json:"verified"`
}

// Availability is an ISO date window (YYYY-MM-DD).
type Availability struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Property struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	Price        float64      `json:"price"`
	Currency     string       `json:"currency"`
	PriceType    PriceType    `json:"priceType"`
	PropertyType PropertyType `json:"propertyType"`
	Bedrooms     *int         `json:"bedrooms,omitempty"`
	Bathrooms    *int         `json:"bathrooms,omitempty"`
	Area         int          `json:"area"` // m²
	Images       []string     `json:"images"`
	Rating       float64      `json:"rating"`
	ReviewCount  int          `json:"reviewCount"`
	Amenities    []string     `json:"amenities"`
	Availability Availability `json:"availability"`
	Owner        Owner        `json:"owner"`
	Featured     bool         `json:"featured"`
	IsFavorite   bool         `json:"isFavorite"`
}

// Clone returns a deep copy so per-session stores never share slices with the catalog.
func (p Property) Clone() Property {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Amenities = append([]string(nil), p.Amenities...)
	if p.Bedrooms != nil {
		b := *p.Bedrooms
		out.Bedrooms = &b
	}
	if p.Bathrooms != nil {
		b := *p.Bathrooms
		out.Bathrooms = &b
	}
	return out
}
