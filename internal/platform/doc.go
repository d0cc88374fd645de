package platform

// Package platform contains small OS/filesystem helpers: locating the sound
// asset directory and resolving catalog asset references to file paths.
