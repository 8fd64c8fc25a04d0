package models

// ErrorResponse is the problem payload carried by non-2xx responses.
// Detail is shown to the user verbatim.
type ErrorResponse struct {
	Detail string `json:"Detail"`
}
