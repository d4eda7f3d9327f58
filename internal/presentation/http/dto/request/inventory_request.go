package request

// UpdateInventoryRequest is the complete inventory register
type UpdateInventoryRequest struct {
	Total *int64           `json:"total" binding:"required"`
	Sizes map[string]int64 `json:"sizes" binding:"required"`
}
