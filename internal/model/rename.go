package model

// RenameManifestEntry records one successful rename in an organize run.
type RenameManifestEntry struct {
	OldFileName string
	NewFileName string
}
