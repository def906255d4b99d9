package catalog

import "drogo/internal/domain/entity"

// seedProducts mirrors the production storefront seed data. Prices are whole
// rupees; Price <= OriginalPrice holds for every entry.
var seedProducts = []entity.Product{
	{
		ID:            "almonds-500g",
		Name:          "California Almonds",
		Description:   "500g Premium Quality",
		Category:      "groceries",
		Price:         449,
		OriginalPrice: 549,
		Tag:           "Bestseller",
		InStock:       true,
		Rating:        4.5,
		DeliveryTime:  "8-12 min",
	},
	{
		ID:            "whole-wheat-bread",
		Name:          "Whole Wheat Bread",
		Description:   "Fresh Daily Baked",
		Category:      "groceries",
		Price:         55,
		OriginalPrice: 65,
		Tag:           "Fresh",
		InStock:       true,
		Rating:        4.3,
		DeliveryTime:  "10-15 min",
	},
	{
		ID:            "masala-chips",
		Name:          "Masala Potato Chips",
		Description:   "150g Crispy & Spicy",
		Category:      "groceries",
		Price:         45,
		OriginalPrice: 60,
		Tag:           "Buy 1 Get 1",
		InStock:       true,
		Rating:        4.2,
		DeliveryTime:  "5-10 min",
	},
	{
		ID:            "mango-juice",
		Name:          "Fresh Mango Juice",
		Description:   "1L Chilled Pack",
		Category:      "beverages",
		Price:         99,
		OriginalPrice: 130,
		Tag:           "Chilled",
		InStock:       true,
		Rating:        4.6,
		DeliveryTime:  "8-12 min",
	},
	{
		ID:            "organic-milk",
		Name:          "Organic Cow Milk",
		Description:   "1L Fresh & Pure",
		Category:      "groceries",
		Price:         72,
		OriginalPrice: 82,
		Tag:           "Organic",
		InStock:       true,
		Rating:        4.4,
		DeliveryTime:  "10-15 min",
	},
	{
		ID:            "bananas-6pc",
		Name:          "Fresh Bananas",
		Description:   "6 pieces - Ripe & Sweet",
		Category:      "groceries",
		Price:         59,
		OriginalPrice: 75,
		Tag:           "Fresh",
		InStock:       true,
		Rating:        4.1,
		DeliveryTime:  "8-12 min",
	},
	{
		ID:            "paracetamol-500mg",
		Name:          "Paracetamol 500mg",
		Description:   "10 tablets - Pain Relief",
		Category:      "pharmacy",
		Price:         35,
		OriginalPrice: 45,
		Tag:           "Prescription Free",
		InStock:       true,
		Rating:        4.8,
		DeliveryTime:  "5-8 min",
	},
	{
		ID:            "vitamin-c-tablets",
		Name:          "Vitamin C Tablets",
		Description:   "30 tablets - Immunity Boost",
		Category:      "pharmacy",
		Price:         199,
		OriginalPrice: 249,
		Tag:           "Immunity",
		InStock:       true,
		Rating:        4.5,
		DeliveryTime:  "5-8 min",
	},
	{
		ID:            "smartphone-charger",
		Name:          "Fast Phone Charger",
		Description:   "Type-C 25W Fast Charging",
		Category:      "electronics",
		Price:         799,
		OriginalPrice: 999,
		Tag:           "Fast Delivery",
		InStock:       true,
		Rating:        4.3,
		DeliveryTime:  "12-15 min",
	},
	{
		ID:            "dog-treats",
		Name:          "Premium Dog Treats",
		Description:   "200g Chicken Flavor",
		Category:      "pet-care",
		Price:         149,
		OriginalPrice: 199,
		Tag:           "Healthy",
		InStock:       true,
		Rating:        4.7,
		DeliveryTime:  "10-15 min",
	},
	{
		ID:            "green-tea",
		Name:          "Premium Green Tea",
		Description:   "25 tea bags - Antioxidant Rich",
		Category:      "beverages",
		Price:         299,
		OriginalPrice: 349,
		Tag:           "Healthy",
		InStock:       true,
		Rating:        4.4,
		DeliveryTime:  "8-12 min",
	},
	{
		ID:            "instant-coffee",
		Name:          "Instant Coffee Powder",
		Description:   "100g Rich & Strong",
		Category:      "beverages",
		Price:         245,
		OriginalPrice: 295,
		Tag:           "Premium",
		InStock:       true,
		Rating:        4.2,
		DeliveryTime:  "8-12 min",
	},
}
