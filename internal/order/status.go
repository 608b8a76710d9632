package order

// ItemStatus is the fulfillment status of a single line item, owned by
// the caterer the item was bought from.
type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemAccepted  ItemStatus = "accepted"
	ItemRejected  ItemStatus = "rejected"
	ItemPreparing ItemStatus = "preparing"
	ItemShipped   ItemStatus = "shipped"
	ItemDelivered ItemStatus = "delivered"
)

var allStatuses = []ItemStatus{
	ItemPending, ItemAccepted, ItemRejected,
	ItemPreparing, ItemShipped, ItemDelivered,
}

func (s ItemStatus) Valid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// transitions is the per-item state machine consulted on every status
// update. It currently permits every move, including out of rejected
// and delivered; tightening the policy means removing entries here and
// nothing else.
var transitions = map[ItemStatus][]ItemStatus{
	ItemPending:   allStatuses,
	ItemAccepted:  allStatuses,
	ItemRejected:  allStatuses,
	ItemPreparing: allStatuses,
	ItemShipped:   allStatuses,
	ItemDelivered: allStatuses,
}

func CanTransition(from, to ItemStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OverallStatus reduces the item statuses to one display label using a
// fixed priority ladder, evaluated top to bottom, first match wins.
func OverallStatus(items []LineItem) ItemStatus {
	if len(items) == 0 {
		return ItemPending
	}

	allRejected := true
	allDelivered := true
	anyShipped := false
	anyPreparing := false
	anyAccepted := false

	for _, item := range items {
		if item.Status != ItemRejected {
			allRejected = false
		}
		if item.Status != ItemDelivered {
			allDelivered = false
		}
		switch item.Status {
		case ItemShipped:
			anyShipped = true
		case ItemPreparing:
			anyPreparing = true
		case ItemAccepted:
			anyAccepted = true
		}
	}

	switch {
	case allRejected:
		return ItemRejected
	case allDelivered:
		return ItemDelivered
	case anyShipped:
		return ItemShipped
	case anyPreparing:
		return ItemPreparing
	case anyAccepted:
		return ItemAccepted
	default:
		return ItemPending
	}
}
