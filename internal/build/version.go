package build

import "fmt"

// Set at link time with -ldflags "-X github.com/bornholm/procuradoria/internal/build.ShortVersion=..."
var (
	ShortVersion = "unknown"
	GitRef       = "unknown"
	BuildDate    = "unknown"
)

// LongVersion is "unknown" for builds without version metadata.
var LongVersion = longVersion()

func longVersion() string {
	if ShortVersion == "unknown" {
		return ShortVersion
	}

	return fmt.Sprintf("%s (%s, %s)", ShortVersion, GitRef, BuildDate)
}
