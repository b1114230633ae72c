package version

// Build metadata, set with -ldflags -X at build time
var (
	GitSource   string
	GitTag      string
	GitBranch   string
	GitHash     string
	GoBuildTime string
)
