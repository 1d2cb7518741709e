package version

import (
	"runtime/debug"
)

const Release = "0.1.0"

// Version returns the release, followed by the abbreviated git revision when
// the binary was built from a checkout.
func Version() string {
	rev := revision()
	if rev == "" {
		return Release
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	return Release + " (" + rev + ")"
}

// revision searches the buildinfo built into the binary to find and return
// the git revision, if present. Returns an empty string otherwise.
func revision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for i := range bi.Settings {
		if bi.Settings[i].Key == "vcs.revision" {
			return bi.Settings[i].Value
		}
	}
	return ""
}
