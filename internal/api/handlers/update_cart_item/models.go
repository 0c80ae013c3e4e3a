package update_cart_item

const (
	OpIncrease = "increase"
	OpDecrease = "decrease"
)

// UpdateItemRequest names the quantity operation to apply to the line.
type UpdateItemRequest struct {
	Op string `json:"op"`
}
