package models

// UserInvitation gates self-registration: the hash is a single-use token
// mailed to a pre-approved address and deleted once registration completes.
type UserInvitation struct {
	Email string `json:"email" db:"email"`
	Hash  string `json:"hash" db:"hash"`
}

// InvitationFilter narrows invitation lookups. Hash is required; when Email
// is set both must match.
type InvitationFilter struct {
	Hash  string
	Email string
}
