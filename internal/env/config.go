package env

const DefaultRegion = "eu-west-1"

var Config struct {
	Region string
}

type VersionInfo struct {
	BuildVersion string
	Commit       string
}

var BuildVersion string
var Commit string
