package model

// Category represents a top-level classification bucket in the Baseline catalog.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Subcategory represents a second-level bucket owned by exactly one category.
type Subcategory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
}
