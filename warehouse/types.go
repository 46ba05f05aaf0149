package warehouse

import (
	"time"
)

// InboundAddress mirrors the address block of an upstream feed row.
type InboundAddress struct {
	Street     string
	City       string
	PostalCode string
}

// InboundProduct mirrors the product row shape of the upstream feed.
type InboundProduct struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	Price       int64 // in cents (minor currency unit)
	Stock       int
	CreatedAt   time.Time
}

// InboundOrder mirrors the order row shape of the upstream feed.
type InboundOrder struct {
	ID         int64
	Number     string
	Status     string
	TotalCents int64
	Shipping   InboundAddress
	OrderedAt  time.Time
}
