package hospital

// Hospital is a static directory entry used by the emergency endpoint.
type Hospital struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Location       string `json:"location" db:"location"`
	ContactInfo    string `json:"contact_info" db:"contact_info"`
	Specialization string `json:"specialization" db:"specialization"`
}
