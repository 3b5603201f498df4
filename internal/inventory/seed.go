package inventory

// DefaultSeed returns the fixed mock catalog the in-memory repository is
// populated with. In production the catalog comes from the inventory
// partner's feed instead.
func DefaultSeed() []*Item {
	return []*Item{
		{
			ID:       "hotel-001",
			Category: CategoryHotel,
			Name:     "Taj Palace Hotel",
			Location: "Mumbai",
			Date:     "2024-01-15",
			Price:    15000,
			Currency: Currency,
			Status:   StatusAvailable,
			Amenities: []string{
				"WiFi", "Pool", "Spa", "Restaurant",
			},
			ContactInfo: &ContactInfo{
				Phone:   "+91-22-6665-3366",
				Email:   "reservations@tajhotels.com",
				Address: "Cuffe Parade, Mumbai",
			},
		},
		{
			ID:               "flight-001",
			Category:         CategoryFlight,
			Name:             "Air India Express",
			Location:         "Mumbai to Delhi",
			Date:             "2024-01-15",
			Time:             "10:30",
			Price:            8500,
			Currency:         Currency,
			Status:           StatusAvailable,
			BookingReference: "AI-1234",
		},
		{
			ID:               "train-001",
			Category:         CategoryTrain,
			Name:             "Rajdhani Express",
			Location:         "Mumbai to Delhi",
			Date:             "2024-01-15",
			Time:             "16:35",
			Price:            2500,
			Currency:         Currency,
			Status:           StatusAvailable,
			BookingReference: "RD-5678",
		},
		{
			ID:               "bus-001",
			Category:         CategoryBus,
			Name:             "Shivneri Volvo",
			Location:         "Mumbai to Pune",
			Date:             "2024-01-16",
			Time:             "07:00",
			Price:            600,
			Currency:         Currency,
			Status:           StatusAvailable,
			BookingReference: "SH-9012",
		},
		{
			ID:        "activity-001",
			Category:  CategoryActivity,
			Name:      "Gateway of India Tour",
			Location:  "Mumbai",
			Date:      "2024-01-16",
			Time:      "09:00",
			Price:     1200,
			Currency:  Currency,
			Status:    StatusAvailable,
			Amenities: []string{"Guide", "Transport", "Entry Tickets"},
		},
		{
			ID:       "restaurant-001",
			Category: CategoryRestaurant,
			Name:     "Trishna Seafood",
			Location: "Mumbai",
			Date:     "2024-01-16",
			Time:     "20:00",
			Price:    2000,
			Currency: Currency,
			Status:   StatusAvailable,
			ContactInfo: &ContactInfo{
				Phone:   "+91-22-2270-3213",
				Email:   "book@trishna.in",
				Address: "Fort, Mumbai",
			},
		},
	}
}
