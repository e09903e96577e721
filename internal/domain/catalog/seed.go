// internal/domain/catalog/seed.go
package catalog

const seedImage = "https://images.pexels.com/photos/1295572/pexels-photo-1295572.jpeg"

// SeedCategories returns the storefront's launch categories
func SeedCategories() []Category {
	return []Category{
		{Name: "Dry Fruits", Icon: "🥜"},
		{Name: "Healthy Snacks", Icon: "🍿"},
		{Name: "Coconut Products", Icon: "🥥"},
		{Name: "Gift Boxes & Combos", Icon: "🎁"},
		{Name: "Seasonal Specials", Icon: "⭐"},
	}
}

// SeedProducts returns the storefront's launch catalog
func SeedProducts() []Product {
	return []Product{
		{
			ID: 1, Name: "Premium Almonds", Category: "Dry Fruits", Subcategory: "Almonds",
			Price: 399, DiscountPrice: 299, Weight: "500g", Image: seedImage,
			Rating: 4.5, Reviews: 128,
			Description: "Premium quality California almonds, rich in protein and healthy fats. Perfect for snacking or cooking.",
			Features:    []string{"100% Natural", "Rich in Protein", "Heart Healthy", "Premium Grade"},
			Stock:       50, InStock: true,
		},
		{
			ID: 2, Name: "Cashew Nuts", Category: "Dry Fruits", Subcategory: "Cashews",
			Price: 499, DiscountPrice: 399, Weight: "500g", Image: seedImage,
			Rating: 4.3, Reviews: 95,
			Description: "Creamy and delicious cashew nuts sourced from the finest farms. Rich in minerals and vitamins.",
			Features:    []string{"Premium Quality", "Rich in Minerals", "Creamy Texture", "Fresh & Crunchy"},
			Stock:       30, InStock: true,
		},
		{
			ID: 3, Name: "Mixed Dry Fruits", Category: "Dry Fruits", Subcategory: "Mixed",
			Price: 699, DiscountPrice: 599, Weight: "1kg", Image: seedImage,
			Rating: 4.7, Reviews: 203,
			Description: "A perfect blend of almonds, cashews, raisins, and walnuts. Ideal for gifting or daily consumption.",
			Features:    []string{"Premium Mix", "Gift Ready", "Nutritious Blend", "Value Pack"},
			Stock:       25, InStock: true,
		},
		{
			ID: 4, Name: "Walnuts", Category: "Dry Fruits", Subcategory: "Walnuts",
			Price: 349, DiscountPrice: 249, Weight: "250g", Image: seedImage,
			Rating: 4.2, Reviews: 87,
			Description: "Fresh Kashmir walnuts with excellent taste and nutritional value. Great for brain health.",
			Features:    []string{"Kashmir Origin", "Brain Food", "Omega-3 Rich", "Fresh Harvest"},
			Stock:       40, InStock: true,
		},
		{
			ID: 5, Name: "Dates (Khajoor)", Category: "Dry Fruits", Subcategory: "Dates",
			Price: 299, DiscountPrice: 199, Weight: "500g", Image: seedImage,
			Rating: 4.6, Reviews: 156,
			Description: "Sweet and nutritious dates packed with natural energy. Perfect for breaking fasts or as a healthy snack.",
			Features:    []string{"Natural Sweetener", "Energy Booster", "High Fiber", "No Added Sugar"},
			Stock:       60, InStock: true,
		},
		{
			ID: 6, Name: "Trail Mix", Category: "Healthy Snacks", Subcategory: "Mixed Snacks",
			Price: 249, DiscountPrice: 199, Weight: "200g", Image: seedImage,
			Rating: 4.4, Reviews: 112,
			Description: "Perfect blend of nuts, seeds, and dried fruits for on-the-go energy. Great for hiking and workouts.",
			Features:    []string{"Energy Boost", "Portable", "Protein Rich", "No Preservatives"},
			Stock:       35, InStock: true,
		},
		{
			ID: 7, Name: "Roasted Peanuts", Category: "Healthy Snacks", Subcategory: "Peanuts",
			Price: 149, DiscountPrice: 99, Weight: "400g", Image: seedImage,
			Rating: 4.1, Reviews: 89,
			Description: "Crunchy roasted peanuts with a perfect balance of salt and flavor. Great for evening snacks.",
			Features:    []string{"Roasted Fresh", "Lightly Salted", "Crunchy", "High Protein"},
			Stock:       45, InStock: true,
		},
		{
			ID: 8, Name: "Coconut Chips", Category: "Coconut Products", Subcategory: "Chips",
			Price: 199, DiscountPrice: 149, Weight: "150g", Image: seedImage,
			Rating: 4.3, Reviews: 67,
			Description: "Crispy coconut chips made from fresh coconuts. A healthy alternative to regular chips.",
			Features:    []string{"100% Natural", "Crispy Texture", "No Trans Fat", "Gluten Free"},
			Stock:       20, InStock: true,
		},
		{
			ID: 9, Name: "Premium Gift Box", Category: "Gift Boxes & Combos", Subcategory: "Premium",
			Price: 1299, DiscountPrice: 999, Weight: "1.5kg", Image: seedImage,
			Rating: 4.8, Reviews: 234,
			Description: "Elegant gift box containing a premium selection of dry fruits and nuts. Perfect for festivals and celebrations.",
			Features:    []string{"Premium Packaging", "Variety Pack", "Gift Ready", "Festival Special"},
			Stock:       15, InStock: true,
		},
		{
			ID: 10, Name: "Festive Special Mix", Category: "Seasonal Specials", Subcategory: "Festival",
			Price: 799, DiscountPrice: 649, Weight: "800g", Image: seedImage,
			Rating: 4.5, Reviews: 145,
			Description: "Special festive mix of premium dry fruits and sweets. Limited time offer for the festive season.",
			Features:    []string{"Limited Edition", "Festive Special", "Premium Mix", "Sweet & Savory"},
			Stock:       0, InStock: false,
		},
	}
}
