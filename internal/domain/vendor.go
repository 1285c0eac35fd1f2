package domain

type Category string

const (
	CategoryAll         Category = "all"
	CategoryMaintenance Category = "maintenance"
	CategoryCleaning    Category = "cleaning"
	CategorySupplies    Category = "supplies"
	CategoryRenovation  Category = "renovation"
	CategoryCatering    Category = "catering"
	CategoryTransport   Category = "transport"
)

// Categories lists every category a vendor may carry ("all" is a selector sentinel, not a category).
var Categories = []Category{
	CategoryMaintenance, CategoryCleaning, CategorySupplies,
	CategoryRenovation, CategoryCatering, CategoryTransport,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type PriceRange string

const (
	PriceBudget  PriceRange = "budget"
	PriceMid     PriceRange = "mid"
	PricePremium PriceRange = "premium"
)

type VendorAvailability string

const (
	VendorAvailable   VendorAvailability = "available"
	VendorBusy        VendorAvailability = "busy"
	VendorUnavailable VendorAvailability = "unavailable"
)

type Contact struct {
	Phone   string  `json:"phone"`
	Email   string  `json:"email"`
	Website *string `json:"website,omitempty"`
}

type Vendor struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Category     Category           `json:"category"`
	Description  string             `json:"description"`
	Location     string             `json:"location"`
	Rating       float64            `json:"rating"`
	ReviewCount  int                `json:"reviewCount"`
	Verified     bool               `json:"verified"`
	Services     []string           `json:"services"`
	PriceRange   PriceRange         `json:"priceRange"`
	Contact      Contact            `json:"contact"`
	Availability VendorAvailability `json:"availability"`
	ResponseTime string             `json:"responseTime"`
}
