package env

// GetBuildVersion returns the values injected at link time, "dev" when built without them.
func GetBuildVersion() (versionInfo VersionInfo) {
	versionInfo.BuildVersion = BuildVersion
	versionInfo.Commit = Commit
	if versionInfo.BuildVersion == "" {
		versionInfo.BuildVersion = "dev"
	}
	if versionInfo.Commit == "" {
		versionInfo.Commit = "unknown"
	}
	return
}
