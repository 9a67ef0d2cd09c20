package dto

type OrderItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type SubmitOrderRequest struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	Currency    string      `json:"currency"`
	TotalAmount float64     `json:"totalAmount"`
	Items       []OrderItem `json:"items"`
}

type SubmitOrderResponse struct {
	URL string `json:"url"`
}

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
