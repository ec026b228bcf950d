package domain

import "time"

// Order is the durable record created once per consumed checkout event. The
// identifier is assigned by Postgres; the audit fields are stamped by the
// repository on write, never trusted from the caller.
type Order struct {
	ID         int
	UserName   string
	TotalPrice float64

	FirstName    string
	LastName     string
	EmailAddress string
	AddressLine  string
	Country      string
	State        string
	ZipCode      string

	CardName      string
	CardNumber    string
	Expiration    string
	CVV           string
	PaymentMethod int

	CreatedBy      string
	CreatedAt      time.Time
	LastModifiedBy string
	LastModifiedAt time.Time
}
