package model

// CommonResponse is the generic {"message": ...} acknowledgement.
type CommonResponse struct {
	Message string `json:"message"`
}

// UserDetails identifies the user that created or last updated a resource.
type UserDetails struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Pagination selects one page of a GraphQL list operation.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
