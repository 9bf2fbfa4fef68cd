package entity

// Account is the aggregate root for the account domain.
// ID is assigned by storage on creation and never changes afterwards.
// Password holds the stored secret material (a bcrypt hash in production).
type Account struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// AddAccountInput is the transient value object consumed by the
// add-account use case. It is never persisted as-is.
type AddAccountInput struct {
	Name     string
	Email    string
	Password string
}

// AuthenticationInput carries the credentials presented on login.
type AuthenticationInput struct {
	Email    string
	Password string
}
