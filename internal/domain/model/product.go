package model

// Product is static catalog reference data.
type Product struct {
	ID   int64
	Name string
}

// ProductPage is one page of the product catalog with pagination metadata.
type ProductPage struct {
	Products []Product
	Total    int64
	Page     int
	Pages    int
}
