package request

// UpdateProfileRequest carries profile edits. An empty field means "keep the
// current value"; substitution happens in the service before validation.
type UpdateProfileRequest struct {
	FirstName string
	LastName  string
	Email     string
	Mobile    string
	BirthDate string
}
