package model

// Suggestion is a candidate prior classification for the selected queue item.
// Suggestions are ephemeral: they live only for the lifetime of the current
// selection and are never staged or submitted directly.
type Suggestion struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CategoryID      string  `json:"category_id"`
	CategoryName    string  `json:"category_name"`
	SubcategoryID   string  `json:"subcategory_id"`
	SubcategoryName string  `json:"subcategory_name"`
	Similarity      float64 `json:"similarity"`
}
