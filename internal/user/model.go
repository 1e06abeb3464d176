package user

// User is an account identified by its globally unique name. Accounts are
// created on first login and never deleted.
type User struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Language    string `json:"language" db:"language"`
	ProfileInfo string `json:"profile_info" db:"profile_info"`
}
