package requests

type SetPassword struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Password   string `json:"password" validate:"password"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
