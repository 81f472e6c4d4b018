// Package orders is the checkout and order-management data-access layer.
package orders

import "time"

type Status string

const (
	StatusNew        Status = "new"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses in declaration order, used in validation messages. Transitions are
// deliberately unconstrained: the admin may set any status at any time.
var Statuses = []string{
	string(StatusNew), string(StatusProcessing), string(StatusCompleted), string(StatusCancelled),
}

var DeliveryMethods = []string{"pickup", "courier"}

var PaymentMethods = []string{"cash", "card"}

type Order struct {
	ID          string    `json:"id"`
	Number      string    `json:"orderNumber"`
	Customer    Customer  `json:"customer"`
	Items       []Item    `json:"items"`
	TotalAmount int       `json:"totalAmount"`
	Delivery    string    `json:"deliveryMethod"`
	Payment     string    `json:"paymentMethod"`
	StoreID     string    `json:"storeId"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Item is one checkout line. Price is the unit price resolved from the
// catalog at order time, never taken from the client.
type Item struct {
	ProductID string `json:"productId"`
	ColorID   string `json:"colorId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
}

// NewOrder is the validated checkout payload.
type NewOrder struct {
	Customer Customer  `json:"customer"`
	Items    []NewItem `json:"items"`
	Delivery string    `json:"deliveryMethod"`
	Payment  string    `json:"paymentMethod"`
	StoreID  string    `json:"storeId"`
}

type NewItem struct {
	ProductID string `json:"productId"`
	ColorID   string `json:"colorId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}
