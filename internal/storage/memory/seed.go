package memory

import "pms_marketplace/internal/domain"

func pint(i int) *int       { return &i }
func pstr(s string) *string { return &s }

// SeedProperties returns a fresh copy of the sample property listings.
func SeedProperties() []domain.Property {
	return []domain.Property{
		{
			ID:           "prop-001",
			Title:        "Luxury Beachfront Villa - Paphos",
			Description:  "Stunning 4-bedroom villa with private pool and direct beach access. Perfect for families and groups.",
			Location:     "Paphos, Cyprus",
			Price:        450,
			Currency:     "EUR",
			PriceType:    domain.PricePerNight,
			PropertyType: domain.PropertyVilla,
			Bedrooms:     pint(4),
			Bathrooms:    pint(3),
			Area:         280,
			Images:       []string{"villa1.jpg", "villa2.jpg", "villa3.jpg"},
			Rating:       4.9,
			ReviewCount:  127,
			Amenities:    []string{"Private Pool", "Beach Access", "WiFi", "Air Conditioning", "Kitchen", "Parking"},
			Availability: domain.Availability{From: "2025-02-01", To: "2025-12-31"},
			Owner:        domain.Owner{Name: "Maria Constantinou", Avatar: "avatar1.jpg", Rating: 4.8, Verified: true},
			Featured:     true,
		},
		{
			ID:           "prop-002",
			Title:        "Modern City Apartment - Limassol",
			Description:  "Contemporary 2-bedroom apartment in the heart of Limassol with marina views.",
			Location:     "Limassol, Cyprus",
			Price:        1800,
			Currency:     "EUR",
			PriceType:    domain.PricePerMonth,
			PropertyType: domain.PropertyApartment,
			Bedrooms:     pint(2),
			Bathrooms:    pint(2),
			Area:         95,
			Images:       []string{"apt1.jpg", "apt2.jpg"},
			Rating:       4.6,
			ReviewCount:  89,
			Amenities:    []string{"Marina View", "Gym", "WiFi", "Air Conditioning", "Balcony"},
			Availability: domain.Availability{From: "2025-03-01", To: "2026-02-28"},
			Owner:        domain.Owner{Name: "Andreas Georgiou", Avatar: "avatar2.jpg", Rating: 4.7, Verified: true},
		},
		{
			ID:           "prop-003",
			Title:        "Boutique Hotel - Ayia Napa",
			Description:  "12-room boutique hotel near the famous Nissi Beach. Fully operational business.",
			Location:     "Ayia Napa, Cyprus",
			Price:        2500000,
			Currency:     "EUR",
			PriceType:    domain.PriceSale,
			PropertyType: domain.PropertyHotel,
			Bedrooms:     pint(12),
			Bathrooms:    pint(14),
			Area:         800,
			Images:       []string{"hotel1.jpg", "hotel2.jpg", "hotel3.jpg"},
			Rating:       4.4,
			ReviewCount:  245,
			Amenities:    []string{"Restaurant", "Bar", "Pool", "Beach Access", "Business License"},
			Availability: domain.Availability{From: "2025-01-16", To: "2025-12-31"},
			Owner:        domain.Owner{Name: "Elena Papadopoulos", Avatar: "avatar3.jpg", Rating: 4.9, Verified: true},
			Featured:     true,
		},
	}
}

// SeedVendors returns a fresh copy of the sample vendor listings.
func SeedVendors() []domain.Vendor {
	return []domain.Vendor{
		{
			ID:           "vendor-001",
			Name:         "Cyprus Professional Cleaning",
			Category:     domain.CategoryCleaning,
			Description:  "Professional housekeeping and deep cleaning services for hotels and vacation rentals.",
			Location:     "Limassol, Cyprus",
			Rating:       4.8,
			ReviewCount:  124,
			Verified:     true,
			Services:     []string{"Daily Housekeeping", "Deep Cleaning", "Laundry Services", "Window Cleaning"},
			PriceRange:   domain.PriceMid,
			Contact:      domain.Contact{Phone: "+357 25 123456", Email: "info@cypruscleaning.com", Website: pstr("www.cypruscleaning.com")},
			Availability: domain.VendorAvailable,
			ResponseTime: "Within 2 hours",
		},
		{
			ID:           "vendor-002",
			Name:         "Mediterranean Maintenance Co.",
			Category:     domain.CategoryMaintenance,
			Description:  "Complete maintenance solutions for hospitality properties. 24/7 emergency services.",
			Location:     "Paphos, Cyprus",
			Rating:       4.9,
			ReviewCount:  89,
			Verified:     true,
			Services:     []string{"HVAC Repair", "Plumbing", "Electrical Work", "Pool Maintenance"},
			PriceRange:   domain.PricePremium,
			Contact:      domain.Contact{Phone: "+357 26 987654", Email: "service@medmaintenance.cy"},
			Availability: domain.VendorBusy,
			ResponseTime: "Within 4 hours",
		},
		{
			ID:           "vendor-003",
			Name:         "Island Supplies Ltd",
			Category:     domain.CategorySupplies,
			Description:  "Hotel supplies, linens, toiletries and hospitality equipment supplier.",
			Location:     "Nicosia, Cyprus",
			Rating:       4.6,
			ReviewCount:  156,
			Verified:     true,
			Services:     []string{"Linens & Towels", "Toiletries", "Kitchen Supplies", "Cleaning Products"},
			PriceRange:   domain.PriceBudget,
			Contact:      domain.Contact{Phone: "+357 22 456789", Email: "orders@islandsupplies.com.cy", Website: pstr("www.islandsupplies.com.cy")},
			Availability: domain.VendorAvailable,
			ResponseTime: "Within 1 hour",
		},
		{
			ID:           "vendor-004",
			Name:         "Elite Property Renovations",
			Category:     domain.CategoryRenovation,
			Description:  "High-end renovation and interior design services for hospitality properties.",
			Location:     "Ayia Napa, Cyprus",
			Rating:       4.7,
			ReviewCount:  67,
			Verified:     false,
			Services:     []string{"Interior Design", "Bathroom Renovation", "Kitchen Upgrade", "Flooring"},
			PriceRange:   domain.PricePremium,
			Contact:      domain.Contact{Phone: "+357 23 345678", Email: "projects@eliterenovations.cy"},
			Availability: domain.VendorAvailable,
			ResponseTime: "Within 24 hours",
		},
	}
}
