package domain

import "time"

// LineItem is one menu item inside an order. Name and price are captured at
// order time and stay frozen even if the menu is later reseeded.
type LineItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID           string     `json:"id"`
	OrderNumber  int64      `json:"order_number"`
	CustomerName string     `json:"customer_name"`
	Items        []LineItem `json:"items"`
	Total        float64    `json:"total"`
	Status       Status     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}
