package model

// EmployeePerformance is an order-quantity total grouped by employee.
type EmployeePerformance struct {
	EmployeeID    int64
	TotalQuantity int64
}

// ProductSales is an order-quantity total grouped by product.
type ProductSales struct {
	ProductID     int64
	TotalQuantity int64
}

// CustomerValue is the summed order amount for a single customer.
type CustomerValue struct {
	CustomerID int64
	TotalValue float64
}
