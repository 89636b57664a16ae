package domain

// User is a credential entry of the user service.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationOutcome is the result of a registration attempt.
type RegistrationOutcome int

const (
	Registered RegistrationOutcome = iota
	AlreadyExists
)

// Message returns the user-facing text of the outcome.
func (o RegistrationOutcome) Message() string {
	if o == AlreadyExists {
		return "User already exists"
	}
	return "User registered successfully"
}
