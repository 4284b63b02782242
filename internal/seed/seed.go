// Package seed holds the demo catalog the storefront ships with.
package seed

import (
	"github.com/shopspring/decimal"

	"furniro/internal/models"
)

// Categories is the fixed set of catalog sections.
var Categories = []models.Category{
	{ID: "dining", Name: "Dining", Description: "Modern dining room furniture for your home", Image: "/categories/dining.jpg"},
	{ID: "living", Name: "Living", Description: "Comfortable living room furniture", Image: "/categories/living.jpg"},
	{ID: "bedroom", Name: "Bedroom", Description: "Peaceful bedroom furniture sets", Image: "/categories/bedroom.jpg"},
}

func rp(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func discounted(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func gallery(slug string) []string {
	return []string{
		"/products/" + slug + ".jpg",
		"/products/" + slug + "-2.jpg",
		"/products/" + slug + "-3.jpg",
		"/products/" + slug + "-4.jpg",
	}
}

// Products returns a fresh copy of the demo catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "asgaard-sofa",
			Name:        "Asgaard Sofa",
			Price:       rp(250000),
			Image:       "/products/asgaard-sofa.jpg",
			Images:      gallery("asgaard-sofa"),
			Description: "Setting the bar as one of the loudest speakers in its class, the Kilburn is a compact, stout-hearted hero with a well-balanced audio which boasts a clear midrange and extended highs for a sound.",
			Category:    "living",
			Tags:        []string{"Sofa", "Chair", "Home", "Shop"},
			Sizes:       []string{"L", "XL", "XS"},
			Colors:      []string{"purple", "black", "brown"},
			IsNew:       true,
			Rating:      4.7,
			Reviews:     5,
			Stock:       10,
			SKU:         "SS001",
			Specifications: map[string]string{
				"Sales Package":         "1 sectional sofa",
				"Model Number":          "TFCBLGRBL6SRHS",
				"Secondary Material":    "Solid Wood",
				"Configuration":         "L-shaped",
				"Upholstery Material":   "Fabric + Cotton",
				"Upholstery Color":      "Bright Grey & Lion",
				"Filling Material":      "Foam",
				"Finish Type":           "Bright Grey & Lion",
				"Adjustable Headrest":   "No",
				"Maximum Load Capacity": "280 KG",
				"Origin of Manufacture": "India",
			},
		},
		{
			ID:              "syltherine",
			Name:            "Syltherine",
			Price:           rp(2500000),
			DiscountedPrice: discounted(2000000),
			Image:           "/products/syltherine.jpg",
			Images:          gallery("syltherine"),
			Description:     "Stylish cafe chair",
			Category:        "dining",
			Tags:            []string{"Dining", "Chair"},
			Sizes:           []string{"Standard"},
			Colors:          []string{"white", "black"},
			Rating:          4.9,
			Reviews:         10,
			Stock:           8,
			SKU:             "DC001",
			Specifications: map[string]string{
				"Material": "Solid Wood",
				"Weight":   "4 KG",
				"Height":   "80 cm",
				"Width":    "45 cm",
				"Depth":    "50 cm",
			},
		},
		{
			ID:          "leviosa",
			Name:        "Leviosa",
			Price:       rp(2500000),
			Image:       "/products/leviosa.jpg",
			Images:      gallery("leviosa"),
			Description: "Stylish cafe chair",
			Category:    "dining",
			Tags:        []string{"Dining", "Chair"},
			Sizes:       []string{"Standard"},
			Colors:      []string{"white", "black", "brown"},
			Rating:      4.6,
			Reviews:     8,
			Stock:       15,
			SKU:         "DC002",
			Specifications: map[string]string{
				"Material": "Solid Wood",
				"Weight":   "4 KG",
				"Height":   "80 cm",
				"Width":    "45 cm",
				"Depth":    "50 cm",
			},
		},
		{
			ID:              "lolito",
			Name:            "Lolito",
			Price:           rp(7000000),
			DiscountedPrice: discounted(5000000),
			Image:           "/products/lolito.jpg",
			Images:          gallery("lolito"),
			Description:     "Luxury big sofa",
			Category:        "living",
			Tags:            []string{"Sofa", "Living Room"},
			Sizes:           []string{"L", "XL"},
			Colors:          []string{"gray", "black"},
			Rating:          4.8,
			Reviews:         12,
			Stock:           5,
			SKU:             "LS001",
			Specifications: map[string]string{
				"Material":         "Premium Fabric",
				"Seating Capacity": "3 Seater",
				"Weight":           "45 KG",
				"Assembly":         "Carpenter Assembly",
				"Dimensions":       "180 x 90 x 85 cm",
			},
		},
		{
			ID:          "respira",
			Name:        "Respira",
			Price:       rp(500000),
			Image:       "/products/respira.jpg",
			Images:      gallery("respira"),
			Description: "Outdoor bar table and stool",
			Category:    "dining",
			Tags:        []string{"Dining", "Outdoor"},
			Sizes:       []string{"Standard"},
			Colors:      []string{"brown", "black"},
			IsNew:       true,
			Rating:      4.5,
			Reviews:     6,
			Stock:       20,
			SKU:         "OD001",
			Specifications: map[string]string{
				"Material":          "Teak Wood",
				"Set Contents":      "1 Table, 4 Stools",
				"Weather Resistant": "Yes",
				"Table Dimensions":  "120 x 120 x 75 cm",
				"Stool Dimensions":  "45 x 45 x 65 cm",
			},
		},
	}
}
