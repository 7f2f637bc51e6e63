package gophercluster

import "github.com/TIVerse/gophercluster/core"

// Version is the current version of gophercluster.
const Version = core.Version

// VersionInfo contains detailed version information.
type VersionInfo struct {
	Version    string
	GoVersion  string
	CommitHash string
	BuildDate  string
}

// GetVersion returns the current version.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:    Version,
		GoVersion:  "1.23+",
		CommitHash: "", // Populated during build
		BuildDate:  "", // Populated during build
	}
}
