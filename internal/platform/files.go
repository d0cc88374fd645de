package platform

import (
	"os"
	"path/filepath"
)

// SoundsDirName is the asset directory shipped next to the executable
const SoundsDirName = "sounds"

// File permissions
const (
	DefaultDirPermissions = 0755
)

// DefaultSoundsDir returns the directory audio assets are loaded from. A
// "sounds" directory next to the executable wins; otherwise the working
// directory is assumed (the common case when running via `go run`).
func DefaultSoundsDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), SoundsDirName)
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	return SoundsDirName
}

// ResolveSoundPath resolves a catalog asset reference against the sounds
// directory. Absolute references are used as-is.
func ResolveSoundPath(soundsDir, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(soundsDir, ref)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
