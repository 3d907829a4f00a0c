package models

// User is the backend representation of an account, as returned by the
// auth endpoints.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// DashboardStats is the stats object served by the dashboard endpoint.
type DashboardStats struct {
	ProtectedRecords int `json:"protectedRecords"`
	VaultFiles       int `json:"vaultFiles"`
	ThreatsDetected  int `json:"threatsDetected"`
}

// VaultFile is the metadata the backend keeps for an uploaded file.
type VaultFile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploaded_at"`
	Status     string `json:"status"`
}

// Breach is a single breach-monitor record.
type Breach struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Date     string `json:"date"`
	Severity string `json:"severity"`
	Records  int64  `json:"records"`
}
