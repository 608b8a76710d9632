package cart

// Quantities is a cart: recipe id mapped to a positive quantity.
// A quantity that drops to zero or below removes the key instead of
// persisting a non-positive value.
type Quantities map[string]int

func (q Quantities) Set(itemID string, qty int) {
	if qty <= 0 {
		delete(q, itemID)
		return
	}
	q[itemID] = qty
}

func (q Quantities) Add(itemID string) int {
	q[itemID]++
	return q[itemID]
}

func (q Quantities) TotalCount() int {
	total := 0
	for _, qty := range q {
		total += qty
	}
	return total
}

// TotalAmount prices the cart against a catalog snapshot. Items missing
// from the snapshot contribute zero.
func (q Quantities) TotalAmount(prices map[string]float64) float64 {
	total := 0.0
	for itemID, qty := range q {
		price, ok := prices[itemID]
		if !ok {
			continue
		}
		total += price * float64(qty)
	}
	return total
}

func (q Quantities) Clone() Quantities {
	out := make(Quantities, len(q))
	for itemID, qty := range q {
		out[itemID] = qty
	}
	return out
}

// Merge reconciles a client-local cart with the server copy: union of
// keys, server value wins wherever both sides hold the same key.
func Merge(local, server Quantities) Quantities {
	merged := make(Quantities, len(local)+len(server))
	for itemID, qty := range local {
		merged.Set(itemID, qty)
	}
	for itemID, qty := range server {
		merged.Set(itemID, qty)
	}
	return merged
}
