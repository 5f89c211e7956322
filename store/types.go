package store

import (
	"time"
)

//go:generate go run debug-generator/cmd/debug-generator --allow-tag json

// Product represents an individual item available for sale.
// We use int64 for Price to represent cents (lowest currency unit) to avoid floating-point errors.
//
//debuggen:derive
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"               debug:"%s"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"       debug:"%d¢"`
	Inventory   int       `json:"inventory_count"`
	CreatedAt   time.Time `json:"created_at"        debug:"%s"`
}

// Customer represents the user placing orders.
//
//debuggen:derive
type Customer struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"     debug:"<%s>"`
	FullName string  `json:"full_name"`
	Address  *string `json:"address"` // In a complex app, this might be its own struct
	IsActive bool    `json:"is_active"`
}

// Order represents a transaction made by a customer.
//
//debuggen:derive
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Status     OrderStatus `json:"status"      debug:"%s"`
	TotalCents int64       `json:"total_cents" debug:"%d¢"`
	Items      []OrderItem `json:"items"` // Has-Many relationship
	OrderedAt  time.Time   `json:"ordered_at"  debug:"%s"`
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
//
//debuggen:derive
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"` // Redundant but useful for history if product name changes
	Quantity  int    `json:"quantity"   debug:"x%d"`
	UnitPrice int64  `json:"unit_price" debug:"%d¢"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
