package model

import "time"

// Order is an append-only ledger entry tying a product, an employee and a
// customer together by identifier. Referential integrity is not enforced.
type Order struct {
	ID          int64
	Quantity    int64
	EmployeeID  int64
	TotalAmount float64
	Date        time.Time
	ProductID   int64
	CustomerID  int64
}

// OrderPage is one page of the order ledger with pagination metadata.
type OrderPage struct {
	Orders []Order
	Total  int64
	Page   int
	Pages  int
}
