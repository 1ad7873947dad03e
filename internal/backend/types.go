package backend

// Resource types mirror the backend's JSON shapes. Timestamps travel
// as strings: the backend emits ISO text and the views format it
// best-effort, so nothing here round-trips through time.Time.

// Employee is one roster entry as the backend stores it.
type Employee struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	Company     string `json:"company,omitempty"`
	Department  string `json:"department,omitempty"`
	Role        string `json:"role,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// CallSession is one tracked interview or audit call.
type CallSession struct {
	ID              string `json:"id,omitempty"`
	PhoneNumber     string `json:"phone_number"`
	Direction       string `json:"direction,omitempty"`
	Status          string `json:"status,omitempty"`
	Platform        string `json:"platform,omitempty"`
	Summary         string `json:"summary,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	StartedAt       string `json:"started_at,omitempty"`
	EndedAt         string `json:"ended_at,omitempty"`
}

// Consultation is one client consultation record.
type Consultation struct {
	ID             string `json:"id,omitempty"`
	SessionID      string `json:"session_id,omitempty"`
	ClientEmail    string `json:"client_email,omitempty"`
	ClientPhone    string `json:"client_phone,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	SourcePlatform string `json:"source_platform,omitempty"`
	Status         string `json:"status,omitempty"`
	Phase          string `json:"phase,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// Process is one catalog entry in the audited process inventory.
type Process struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Department  string `json:"department,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Report is generated-report metadata. Rendering the report body is
// out of scope for the dashboard.
type Report struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	ReportType string `json:"report_type,omitempty"`
	Status     string `json:"status,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}
