package domain

import "time"

// ShoppingCart is the single document the basket service owns for a user.
// It is always written whole: updates replace the full document, checkout
// deletes it.
type ShoppingCart struct {
	ID        string             `bson:"_id,omitempty" json:"-"`
	UserName  string             `bson:"user_name" json:"userName"`
	Items     []ShoppingCartItem `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"-"`
	UpdatedAt time.Time          `bson:"updated_at" json:"-"`
}

type ShoppingCartItem struct {
	ProductID   string  `bson:"product_id" json:"productId"`
	ProductName string  `bson:"product_name" json:"productName"`
	Price       float64 `bson:"price" json:"price"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	ImageFile   string  `bson:"image_file" json:"imageFile"`
}

// TotalPrice is the server-side basket total. Checkout events always carry
// this value, never a client-supplied total.
func (c *ShoppingCart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// BasketCheckout is the V1 checkout request: shipping and payment details for
// the order that will be created downstream.
type BasketCheckout struct {
	UserName string `json:"userName"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	AddressLine  string `json:"addressLine"`
	Country      string `json:"country"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`

	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	Expiration    string `json:"expiration"`
	CVV           string `json:"cvv"`
	PaymentMethod int    `json:"paymentMethod"`
}

// BasketCheckoutV2 is the slimmed V2 checkout request.
type BasketCheckoutV2 struct {
	UserName string `json:"userName"`
}
