package domain

type CreateOrderRequest struct {
	CustomerName string     `json:"customer_name"`
	Items        []LineItem `json:"items"`
	Total        float64    `json:"total"`
}

type CreateOrderResponse struct {
	OrderID     string  `json:"order_id"`
	OrderNumber int64   `json:"order_number"`
	Status      Status  `json:"status"`
	Total       float64 `json:"total"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusBoard is the four-bucket projection consumed by the customer,
// kitchen and display views. Every live order lands in exactly one bucket;
// buckets are ordered oldest first by order number.
type StatusBoard struct {
	Pending   []Order `json:"pendente"`
	Preparing []Order `json:"preparando"`
	Ready     []Order `json:"pronto"`
	Delivered []Order `json:"entregue"`
}
