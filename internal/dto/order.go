package dto

import "time"

type CreateOrderRequest struct {
	Details string `json:"orderDetails" binding:"required,min=1,max=2000"`
}

type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Details   string    `json:"orderDetails"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListOrdersResponse struct {
	Items []OrderResponse `json:"items"`
}
