package constants

// Role names as stored on users.user_role and inside JWT claims.
const (
	RoleAdmin    = "ADMIN"
	RoleAgent    = "AGENT"
	RoleCustomer = "CUSTOMER"
)

// Forbidden-message templates per route group.
const (
	ErrOnlyAdminCanAccess    = "Only ADMIN can access this resource"
	ErrOnlyAgentCanAccess    = "Only AGENT can access this resource"
	ErrOnlyCustomerCanAccess = "Only CUSTOMER can access this resource"
)
