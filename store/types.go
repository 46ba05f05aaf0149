package store

import (
	"time"
)

// 1. Product is the typed catalog entry that loosely-shaped feed rows are cast into.
// We use int64 for PriceCents to represent cents (lowest currency unit) to avoid floating-point errors.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	PriceCents  int64 `cast:"Price"`
	Inventory   int   `cast:"Stock"`
	CreatedAt   time.Time
}

// 2. Customer represents the user placing orders. Feeds attach vendor-specific
// attributes we do not declare; those land in Extra under the dynamic-assign policy.
type Customer struct {
	ID       int64
	Email    string
	FullName string
	IsActive bool
	Extra    map[string]any `cast:",dynamic"`
}

// InitDefaults is the constructor path: customers are active unless the
// source says otherwise.
func (c *Customer) InitDefaults() {
	c.IsActive = true
}

// 3. Address is the shipping snapshot nested inside an order.
type Address struct {
	Street string
	City   string
	Zip    string `cast:"PostalCode"`
}

// 4. Order represents a transaction made by a customer.
type Order struct {
	ID         int64
	Number     string
	Status     string // e.g. "pending", "paid", "shipped", "cancelled"
	TotalCents int64
	Shipping   Address // nested struct, converted recursively
	OrderedAt  time.Time
}
