package entity

// Principal is the verified identity of the caller for one request,
// extracted from the bearer token claims.
type Principal struct {
	ID    string
	Name  string
	Email string
}
