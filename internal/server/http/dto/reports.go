package dto

// EmployeePerformanceResponse is a per-employee quantity total.
type EmployeePerformanceResponse struct {
	EmployeeID    int64 `json:"employee_id"`
	TotalQuantity int64 `json:"total_quantity"`
}

// ProductSalesResponse is a per-product quantity total.
type ProductSalesResponse struct {
	ProductID     int64 `json:"product_id"`
	TotalQuantity int64 `json:"total_quantity"`
}

// CustomerValueResponse is a per-customer amount total.
type CustomerValueResponse struct {
	CustomerID int64   `json:"customer_id"`
	TotalValue float64 `json:"total_value"`
}

// ErrorResponse carries the message for failed report and listing queries.
type ErrorResponse struct {
	Error string `json:"error"`
}
