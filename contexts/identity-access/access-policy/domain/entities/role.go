package entities

// Role names are the two disjoint policy sets. An identity may hold both,
// but each set is granted and revoked independently.
const (
	RoleAdmin   = "admin"
	RoleCreator = "whitelisted_creator"
)

// Membership is one identity's presence in one role set.
type Membership struct {
	Identity  string `json:"identity"`
	Role      string `json:"role"`
	GrantedBy string `json:"granted_by"`
	GrantedAt int64  `json:"granted_at"`
}
