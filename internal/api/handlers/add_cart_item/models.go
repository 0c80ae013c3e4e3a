package add_cart_item

// AddItemRequest names the catalog service to put in the cart.
type AddItemRequest struct {
	ServiceID string `json:"serviceId"`
}
