package domain

// Lifecycle labels as defined by the order and delivery services. The admin
// UI renders these verbatim in its status dropdowns.
var OrderStatuses = []string{
	"CREATED",
	"CONFIRMED",
	"PREPARING",
	"OUT_FOR_DELIVERY",
	"DELIVERED",
	"CANCELLED",
}

var DeliveryStatuses = []string{
	"ASSIGNED",
	"PICKED_UP",
	"ON_THE_WAY",
	"DELIVERED",
	"CANCELLED",
}

func ValidOrderStatus(status string) bool {
	return contains(OrderStatuses, status)
}

func ValidDeliveryStatus(status string) bool {
	return contains(DeliveryStatuses, status)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
