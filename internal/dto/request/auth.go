package request

type RegisterRequest struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required"`
	Mobile    string `validate:"required"`
	BirthDate string `validate:"required"`
	Password  string `validate:"required"`
	Role      string `validate:"required"`
}

type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}
