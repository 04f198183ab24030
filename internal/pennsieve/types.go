package pennsieve

// Member is one entry from GET /organizations/{org}/members. All fields are
// optional in the API response.
type Member struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}
