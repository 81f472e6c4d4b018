package orders

import (
	"fmt"

	"github.com/mia-boutique/storefront/internal/validate"
)

func ValidateNewOrder(in NewOrder) error {
	var is validate.Issues
	is.MinString("customer.name", in.Customer.Name, 2)
	is.MinString("customer.phone", in.Customer.Phone, 6)
	is.Enum("deliveryMethod", in.Delivery, DeliveryMethods)
	is.Enum("paymentMethod", in.Payment, PaymentMethods)
	if in.Delivery == "pickup" {
		is.MinString("storeId", in.StoreID, 1)
	}
	if in.Delivery == "courier" {
		is.MinString("customer.address", in.Customer.Address, 5)
	}
	if len(in.Items) == 0 {
		is.Add("items", "Array must contain at least 1 element(s)")
	}
	for i, it := range in.Items {
		is.MinString(fmt.Sprintf("items.%d.productId", i), it.ProductID, 1)
		is.MinString(fmt.Sprintf("items.%d.size", i), it.Size, 1)
		is.Positive(fmt.Sprintf("items.%d.quantity", i), it.Quantity)
	}
	return is.Err()
}

// ValidateStatus checks a status-patch value against the enum. Any enum value
// is reachable from any other; there is no transition table.
func ValidateStatus(status string) error {
	var is validate.Issues
	is.Enum("status", status, Statuses)
	return is.Err()
}
