package models

import "time"

// CartLine is a product snapshot plus the quantity in the cart.
type CartLine struct {
	ProductID string   `json:"productId" bson:"productId"`
	Name      string   `json:"name" bson:"name"`
	Category  Category `json:"category" bson:"category"`
	Price     int      `json:"price" bson:"price"`   // unit price, rupees
	Weight    int      `json:"weight" bson:"weight"` // unit weight, grams
	Quantity  int      `json:"quantity" bson:"quantity"`
}

// ShippingDetails are entered by the customer at checkout.
// State is expected to be one of the serviced zones (Telangana,
// Andhra Pradesh); enforcement of that is a UI concern.
type ShippingDetails struct {
	CustomerName string `json:"customerName" bson:"customerName"`
	Address      string `json:"address" bson:"address"`
	City         string `json:"city" bson:"city"`
	State        string `json:"state" bson:"state"`
	Pincode      string `json:"pincode" bson:"pincode"`
	Phone        string `json:"phone" bson:"phone"`
}

// Order statuses. Only StatusPendingHandoff is ever set here; the
// later transitions happen out-of-band once payment is coordinated.
const (
	StatusPendingHandoff = "PENDING_WHATSAPP"
	StatusConfirmed      = "CONFIRMED"
	StatusShipped        = "SHIPPED"
)

// Order is a frozen snapshot of a cart plus shipping details. It is
// written once and never mutated afterwards.
type Order struct {
	OrderID         string          `json:"orderId" bson:"orderId"`
	Lines           []CartLine      `json:"items" bson:"items"`
	ShippingDetails ShippingDetails `json:"shippingDetails" bson:"shippingDetails"`
	Subtotal        int             `json:"subtotal" bson:"subtotal"`
	ShippingCost    int             `json:"shippingCost" bson:"shippingCost"`
	Total           int             `json:"totalAmount" bson:"totalAmount"`
	Status          string          `json:"status" bson:"status"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
}
