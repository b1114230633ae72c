package version

import (
	"runtime"
	"runtime/debug"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

type KeyValue struct {
	Key   string `json:"name" writer:",width:12"`
	Value string `json:"value" writer:",wrap,width:60"`
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Metadata returns the build metadata and the runtime. Values which are not
// set at link time are read from the module build information when present
func Metadata() []KeyValue {
	tag, hash, buildTime := GitTag, GitHash, GoBuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		if tag == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			tag = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if hash == "" {
					hash = setting.Value
				}
			case "vcs.time":
				if buildTime == "" {
					buildTime = setting.Value
				}
			}
		}
	}

	metadata := make([]KeyValue, 0, 7)
	for _, kv := range []KeyValue{
		{"source", GitSource},
		{"branch", GitBranch},
		{"tag", tag},
		{"hash", hash},
		{"build time", buildTime},
	} {
		if kv.Value != "" {
			metadata = append(metadata, kv)
		}
	}
	return append(metadata,
		KeyValue{"go version", runtime.Version()},
		KeyValue{"os", runtime.GOOS + "/" + runtime.GOARCH},
	)
}
