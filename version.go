package markpad

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version returns the library release, embedded from the VERSION file.
func Version() string {
	return strings.TrimSpace(rawVersion)
}

// ParseVersion splits a "major.minor.patch" release string into its numeric
// parts. Pre-release and build suffixes are not supported.
func ParseVersion(v string) (major, minor, patch int, err error) {
	parts := strings.Split(strings.TrimSpace(v), ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed version %q", v)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 0 || (len(p) > 1 && p[0] == '0') {
			return 0, 0, 0, fmt.Errorf("malformed version %q", v)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
