package catalog

import "app/internal/domain/model"

// Fallback はカタログが読めないときに差し替える組み込みの商品一覧。
// ストアが空・DB障害でも売り場を空にしないための静的データ。
func Fallback() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Oversized Graphic Tee",
			Description: "Heavyweight cotton tee with front print.",
			Category:    "tees",
			Price:       500,
			Stock:       25,
			Sizes:       "S,M,L,XL",
			ImageURL:    "/images/tee-graphic.png",
		},
		{
			ID:          2,
			Name:        "Heavy Fleece Hoodie",
			Description: "400gsm fleece hoodie, boxy fit.",
			Category:    "hoodies",
			Price:       1200,
			Stock:       12,
			Sizes:       "M,L,XL",
			ImageURL:    "/images/hoodie-fleece.png",
		},
		{
			ID:          3,
			Name:        "Cargo Work Pants",
			Description: "Relaxed fit cargo pants with six pockets.",
			Category:    "bottoms",
			Price:       1500,
			Stock:       8,
			Sizes:       "28,30,32,34",
			ImageURL:    "/images/pants-cargo.png",
		},
		{
			ID:          4,
			Name:        "Classic Logo Cap",
			Description: "Unstructured 6-panel cap, embroidered logo.",
			Category:    "accessories",
			Price:       350,
			Stock:       40,
			Sizes:       "OS",
			ImageURL:    "/images/cap-logo.png",
		},
		{
			ID:          5,
			Name:        "Washed Denim Jacket",
			Description: "Stonewashed trucker jacket.",
			Category:    "outerwear",
			Price:       2200,
			Stock:       5,
			Sizes:       "S,M,L",
			ImageURL:    "/images/jacket-denim.png",
		},
		{
			ID:          6,
			Name:        "Striped Longsleeve",
			Description: "Ribbed longsleeve with contrast stripes.",
			Category:    "tees",
			Price:       750,
			Stock:       18,
			Sizes:       "S,M,L,XL",
			ImageURL:    "/images/longsleeve-stripe.png",
		},
	}
}

// FindFallback は組み込み一覧からIDで探す。
func FindFallback(id int64) (model.Product, bool) {
	for _, p := range Fallback() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
