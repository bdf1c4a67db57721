package domain

// EnforceRequest is the question asked of the RBAC layer: may this
// employee perform this action on this resource?
type EnforceRequest struct {
	EmployeeID string
	Resource   string
	Action     string
}
