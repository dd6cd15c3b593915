package releases

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/jzelinskie/cobrautil/v2"
	"golang.org/x/mod/semver"
)

// BuildInfo returns the build information embedded in the running binary.
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("failed to read BuildInfo because the program was compiled with Go %s", runtime.Version())
	}
	return bi, nil
}

// IsReleasedVersion returns whether the version is a tagged, non-prerelease
// semantic version rather than a development build.
func IsReleasedVersion(version string) bool {
	return semver.IsValid(version) && semver.Prerelease(version) == ""
}

// UsageVersion renders the output of the version command for the given build.
// When includeDeps is set, every module dependency is listed on its own line.
func UsageVersion(programName string, bi *debug.BuildInfo, includeDeps bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", programName, cobrautil.VersionWithFallbacks(bi))
	if !IsReleasedVersion(bi.Main.Version) {
		sb.WriteString(" (unreleased)")
	}

	if includeDeps {
		for _, dep := range bi.Deps {
			fmt.Fprintf(&sb, "\n%s %s", dep.Path, dep.Version)
		}
	}
	return sb.String()
}
