package services

// Actor is the authenticated identity performing an operation, as supplied
// by the auth layer.
type Actor struct {
	ID   string
	Role string
}
