package requests

type SaveDoctor struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Specialty  string `json:"specialty,omitempty"`
	Link       string `json:"link" validate:"required"`
	About      string `json:"about,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

type TrialSignup struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"password"`
	Specialty string `json:"specialty,omitempty"`
	Link      string `json:"link" validate:"required"`
}

type SaveReferral struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty,omitempty"`
	Message   string `json:"message,omitempty"`
}
