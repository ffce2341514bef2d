package responses

type Login struct {
	Token      string `json:"token"`
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
}

type SetPassword struct {
	CustomerID string `json:"customer_id"`
}
