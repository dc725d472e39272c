package diag

import "os"

// CredentialsStatus records whether credential material exists at a path.
// Existence is a point-in-time filesystem check; the file is never opened,
// parsed, or validated.
type CredentialsStatus struct {
	Path   string
	Exists bool
}

// CollectCredentials checks for a file at path. The path is echoed back
// exactly as given, with no normalization.
func CollectCredentials(path string) CredentialsStatus {
	_, err := os.Stat(path)
	return CredentialsStatus{
		Path:   path,
		Exists: err == nil,
	}
}
