package version

// version is overridden at build time with
// -ldflags "-X github.com/cbodonnell/tictaccube/pkg/version.version=<tag>".
var version = "dev"

// Get returns the version of the running binary.
func Get() string {
	return version
}
