package models

// UploadStatus describes where a file is in its upload lifecycle.
type UploadStatus string

const (
	// UploadStatusUploading means bytes are being transmitted.
	UploadStatusUploading UploadStatus = "uploading"
	// UploadStatusEncrypting means transport finished, post-upload processing.
	UploadStatusEncrypting UploadStatus = "encrypting"
	// UploadStatusSecured is the terminal success state.
	UploadStatusSecured UploadStatus = "secured"
	// UploadStatusFailed is the terminal failure state.
	UploadStatusFailed UploadStatus = "failed"
)

// Terminal reports whether no further transitions are defined for s.
func (s UploadStatus) Terminal() bool {
	return s == UploadStatusSecured || s == UploadStatusFailed
}

// UploadRecord tracks a single upload attempt. Records are created when a
// file is accepted for upload and stay in the visible list until the view
// is reloaded from the backend's file listing.
type UploadRecord struct {
	// ID is client-generated, unique per attempt.
	ID   string
	Name string
	// Progress is 0–100.
	Progress int
	Status   UploadStatus
	// Err holds the failure message when Status is failed.
	Err string
}
