package catalog

// Seed returns the three demo packages. Prices are in rupees.
func Seed() []*Package {
	return []*Package{
		{
			ID:                    1,
			Name:                  "Weekend Explorer",
			Description:           "Perfect for short getaways and weekend trips across India.",
			TotalNights:           6,
			Price:                 24999,
			OriginalNightlyRate:   5500,
			DiscountedNightlyRate: 4166,
			ValidityMonths:        12,
			Features:              []string{"Flexible dates", "Premium properties", "No blackout dates", "24/7 support"},
		},
		{
			ID:                    2,
			Name:                  "Monthly Nomad",
			Description:           "Ideal for digital nomads and frequent travelers exploring India.",
			TotalNights:           15,
			Price:                 74999,
			OriginalNightlyRate:   6000,
			DiscountedNightlyRate: 5000,
			ValidityMonths:        18,
			Features:              []string{"Extended validity", "Premium locations", "Concierge service", "Free cancellation"},
		},
		{
			ID:                    3,
			Name:                  "Annual Adventurer",
			Description:           "Best value for travel enthusiasts planning multiple trips across India.",
			TotalNights:           30,
			Price:                 124999,
			OriginalNightlyRate:   5500,
			DiscountedNightlyRate: 4166,
			ValidityMonths:        24,
			Features:              []string{"Maximum savings", "Luxury properties", "Priority booking", "Personal travel advisor"},
		},
	}
}
