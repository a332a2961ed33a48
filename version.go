package paramfetch

import "github.com/blang/semver/v4"

// Version of the paramfetch module
var Version = semver.MustParse("0.1.0")
