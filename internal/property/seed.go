package property

// Seed returns the demo listings. Properties 1-6 belong to host "2", 7-8 to host "3".
func Seed() []*Property {
	return []*Property{
		{
			ID: 1, Name: "Oceanview Villa", Location: "Goa, India", BaseRate: 18000,
			ImageURL:      "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?auto=format&fit=crop&w=800&q=80",
			TotalBookings: 47, OccupancyRate: 85, BulkBookingEnabled: true,
			Description: "Luxury oceanview villa with private beach access",
			Amenities:   []string{"WiFi", "Pool", "Beach Access", "AC", "Parking"},
			RoomTypes:   []string{"Deluxe", "Suite"},
			HostID:      "2",
		},
		{
			ID: 2, Name: "Mountain Retreat", Location: "Manali, Himachal Pradesh", BaseRate: 12000,
			ImageURL:      "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=800&q=80",
			TotalBookings: 32, OccupancyRate: 78, BulkBookingEnabled: true,
			Description: "Cozy mountain retreat with stunning valley views",
			Amenities:   []string{"WiFi", "Fireplace", "Mountain View", "Parking"},
			RoomTypes:   []string{"Standard", "Deluxe"},
			HostID:      "2",
		},
		{
			ID: 3, Name: "City Loft", Location: "Mumbai, Maharashtra", BaseRate: 15000,
			ImageURL:      "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?auto=format&fit=crop&w=800&q=80",
			TotalBookings: 63, OccupancyRate: 92, BulkBookingEnabled: true,
			Description: "Modern city loft in the heart of Mumbai",
			Amenities:   []string{"WiFi", "AC", "City View", "Gym", "Parking"},
			RoomTypes:   []string{"Studio", "One Bedroom"},
			HostID:      "2",
		},
		{
			ID: 4, Name: "Beachfront Condo", Location: "Kochi, Kerala", BaseRate: 14500,
			ImageURL:      "https://images.unsplash.com/photo-1559827260-dc66d52bef19?auto=format&fit=crop&w=800&q=80",
			TotalBookings: 28, OccupancyRate: 71, BulkBookingEnabled: false,
			Description: "Beautiful beachfront condo with ocean views",
			Amenities:   []string{"WiFi", "Beach Access", "Pool", "AC", "Balcony"},
			RoomTypes:   []string{"One Bedroom", "Two Bedroom"},
			HostID:      "2",
		},
		{
			ID: 5, Name: "Heritage Haveli", Location: "Jaipur, Rajasthan", BaseRate: 16500,
			ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=800&q=80",
			TotalBookings: 41, OccupancyRate: 88, BulkBookingEnabled: true,
			Description: "Traditional Rajasthani haveli with royal architecture",
			Amenities:   []string{"WiFi", "Heritage Architecture", "Courtyard", "AC", "Cultural Tours"},
			RoomTypes:   []string{"Royal Suite", "Heritage Room"},
			HostID:      "2",
		},
		{
			ID: 6, Name: "Backwater Resort", Location: "Alleppey, Kerala", BaseRate: 13000,
			ImageURL:      "https://images.unsplash.com/photo-1544551763-46a013bb70d5?auto=format&fit=crop&w=800&q=80",
			TotalBookings: 35, OccupancyRate: 82, BulkBookingEnabled: true,
			Description: "Serene backwater resort with houseboat experience",
			Amenities:   []string{"WiFi", "Backwater View", "Boat Rides", "AC", "Ayurvedic Spa"},
			RoomTypes:   []string{"Water Villa", "Garden View"},
			HostID:      "2",
		},
		{
			ID: 7, Name: "Himalayan Lodge", Location: "Rishikesh, Uttarakhand", BaseRate: 11000,
			ImageURL:      "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=800&q=80",
			TotalBookings: 29, OccupancyRate: 75, BulkBookingEnabled: true,
			Description: "Peaceful lodge near the Ganges with yoga sessions",
			Amenities:   []string{"WiFi", "Yoga Studio", "River View", "Meditation Hall", "Organic Food"},
			RoomTypes:   []string{"Deluxe", "Premium"},
			HostID:      "3",
		},
		{
			ID: 8, Name: "Desert Camp", Location: "Jaisalmer, Rajasthan", BaseRate: 9500,
			ImageURL:      "https://images.unsplash.com/photo-1544735716-392fe2489ffa?auto=format&fit=crop&w=800&q=80",
			TotalBookings: 22, OccupancyRate: 68, BulkBookingEnabled: true,
			Description: "Luxury desert camp with camel safari experiences",
			Amenities:   []string{"WiFi", "Desert Safari", "Cultural Shows", "Bonfire", "Star Gazing"},
			RoomTypes:   []string{"Luxury Tent", "Royal Tent"},
			HostID:      "3",
		},
	}
}
