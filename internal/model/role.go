package model

// Role is the computed authorization class of a caller. It is never
// persisted and never embedded in a token: it is derived on every
// request by checking the caller's user id against the `admins` set
// and then the `merchants` ownership column. A user present in both
// sets resolves to ADMIN.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleMerchant Role = "MERCHANT"
	RoleNone     Role = "NONE"
)
