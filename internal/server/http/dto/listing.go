package dto

// OrderResponse is a single ledger row. Date uses the YYYY-MM-DD form.
type OrderResponse struct {
	ID          int64   `json:"id"`
	Quantity    int64   `json:"quantity"`
	EmployeeID  int64   `json:"employee_id"`
	TotalAmount float64 `json:"total_amount"`
	Date        string  `json:"date"`
	ProductID   int64   `json:"product_id"`
	CustomerID  int64   `json:"customer_id"`
}

// OrdersPageResponse is one page of orders with pagination metadata.
type OrdersPageResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
}

// ProductResponse is a single catalog row.
type ProductResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductsPageResponse is one page of products with pagination metadata.
type ProductsPageResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
}
