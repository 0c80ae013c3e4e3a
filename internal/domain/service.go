package domain

// ServiceItem is one entry of the salon's service catalog.
type ServiceItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CartLine is a catalog item chosen by a customer, with a quantity.
// It carries a value copy of the item: later catalog edits never change
// lines already in a cart or in a confirmed appointment.
type CartLine struct {
	ServiceItem
	Qty int `json:"qty"`
}

// LineTotal returns price times quantity for this line.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Qty)
}

// CartTotal sums the line totals of a set of cart lines.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}
