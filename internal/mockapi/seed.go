package mockapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/baseline-tools/cockpit/internal/model"
)

// DefaultSeed returns a small but representative data set for local
// development: a handful of pending items with AI rationale, a two-level
// taxonomy and per-item suggestions.
func DefaultSeed() Seed {
	categories := []model.Category{
		{ID: "cat-beverages", Name: "Beverages"},
		{ID: "cat-groceries", Name: "Groceries"},
		{ID: "cat-cleaning", Name: "Cleaning"},
	}
	subcategories := []model.Subcategory{
		{ID: "sub-sodas", Name: "Sodas", CategoryID: "cat-beverages"},
		{ID: "sub-juices", Name: "Juices", CategoryID: "cat-beverages"},
		{ID: "sub-dairy", Name: "Dairy", CategoryID: "cat-groceries"},
		{ID: "sub-snacks", Name: "Snacks", CategoryID: "cat-groceries"},
		{ID: "sub-detergents", Name: "Detergents", CategoryID: "cat-cleaning"},
	}

	type pending struct {
		original   string
		normalized string
		reasoning  string
		catID      string
		subID      string
		confidence float64
	}
	seedItems := []pending{
		{
			original:   "REFRIG COCA COLA PET 2LT",
			normalized: "Coca-Cola Soda 2L",
			reasoning:  "Matched 14 prior items with the same brand and package size.",
			catID:      "cat-beverages",
			subID:      "sub-sodas",
			confidence: 0.96,
		},
		{
			original:   "SUCO DEL VALLE UVA 1L",
			normalized: "Del Valle Grape Juice 1L",
			reasoning:  "Brand and flavor recognized; low ambiguity.",
			catID:      "cat-beverages",
			subID:      "sub-juices",
			confidence: 0.91,
		},
		{
			original:   "QJO MUSS FATIADO KG",
			normalized: "Sliced Mozzarella Cheese",
			reasoning:  "Abbreviation expanded from QJO MUSS; sold by weight.",
			catID:      "cat-groceries",
			subID:      "sub-dairy",
			confidence: 0.74,
		},
		{
			original:   "DET LIQ OMO LAVAGEM 3L",
			normalized: "OMO Liquid Detergent 3L",
			reasoning:  "Household cleaning brand with explicit volume.",
			catID:      "cat-cleaning",
			subID:      "sub-detergents",
			confidence: 0.88,
		},
		{
			original:   "BISC TRAKINAS MORANGO 126G",
			normalized: "Trakinas Strawberry Cookies 126g",
			reasoning:  "Snack brand detected; weight parsed from label.",
			catID:      "",
			subID:      "",
			confidence: 0.52,
		},
	}

	queue := make([]model.QueueItem, 0, len(seedItems))
	suggestions := make(map[string][]model.Suggestion, len(seedItems))
	now := time.Now().UTC()
	for i, p := range seedItems {
		item := model.QueueItem{
			ID:             uuid.NewString(),
			OriginalName:   p.original,
			NormalizedName: p.normalized,
			Confidence:     p.confidence,
			Reasoning:      p.reasoning,
			CNPJ:           "12.345.678/0001-90",
			CreatedAt:      now.Add(-time.Duration(i) * time.Minute),
			CategoryID:     p.catID,
			SubcategoryID:  p.subID,
		}
		queue = append(queue, item)
		suggestions[item.ID] = seedSuggestions(item, categories, subcategories)
	}

	return Seed{
		Queue:         queue,
		Categories:    categories,
		Subcategories: subcategories,
		Suggestions:   suggestions,
	}
}

// seedSuggestions fabricates prior classifications resembling the item.
func seedSuggestions(item model.QueueItem, categories []model.Category, subcategories []model.Subcategory) []model.Suggestion {
	catID := item.CategoryID
	subID := item.SubcategoryID
	if catID == "" && len(categories) > 0 {
		catID = categories[0].ID
	}
	if subID == "" && len(subcategories) > 0 {
		subID = subcategories[0].ID
	}

	var catName, subName string
	for _, cat := range categories {
		if cat.ID == catID {
			catName = cat.Name
		}
	}
	for _, sub := range subcategories {
		if sub.ID == subID {
			subName = sub.Name
		}
	}

	out := make([]model.Suggestion, 0, 2)
	for i, similarity := range []float64{0.93, 0.78} {
		out = append(out, model.Suggestion{
			ID:              uuid.NewString(),
			Name:            fmt.Sprintf("%s (prior #%d)", item.NormalizedName, i+1),
			CategoryID:      catID,
			CategoryName:    catName,
			SubcategoryID:   subID,
			SubcategoryName: subName,
			Similarity:      similarity,
		})
	}
	return out
}
