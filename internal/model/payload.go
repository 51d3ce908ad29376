package model

// SubmitPayload is the wire shape for committing a single reviewed item.
type SubmitPayload struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CategoryID    string `json:"category_id"`
	SubcategoryID string `json:"subcategory_id"`
}

// BatchSubmitItem is one entry of a batch submission. Name is optional:
// ad-hoc batch saves classify without renaming.
type BatchSubmitItem struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	CategoryID    string `json:"category_id"`
	SubcategoryID string `json:"subcategory_id"`
}

// BatchSubmitPayload is the wire shape for committing many items at once.
type BatchSubmitPayload struct {
	Items []BatchSubmitItem `json:"items"`
}
