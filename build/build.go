// Package build reports version information for the flatbench binary. Release
// builds inject a JSON Info document with -ldflags; other builds fall back to
// what the Go toolchain records in the binary.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"sort"
)

// Injected is set at link time:
//
//	go build -ldflags "-X 'github.com/amp-labs/amp-flat/build.Injected={...}'"
var Injected string //nolint:gochecknoglobals

// Info contains build metadata.
type Info struct {
	Version      string            `json:"version"`
	GitCommit    string            `json:"git_commit"` //nolint:tagliatelle
	BuildTime    string            `json:"build_time"` //nolint:tagliatelle
	GoVersion    string            `json:"go_version"` //nolint:tagliatelle
	Dependencies map[string]string `json:"dependencies"`
}

// Parse deserializes an injected Info document.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON", "data", js, "error", err)

		return nil, false
	}

	return &info, true
}

// FromBuildInfo converts the toolchain's record of a binary into Info.
func FromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Version:      bi.Main.Version,
		GoVersion:    bi.GoVersion,
		Dependencies: make(map[string]string, len(bi.Deps)),
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.BuildTime = setting.Value
		}
	}

	for _, dep := range bi.Deps {
		info.Dependencies[dep.Path] = dep.Version
	}

	return info
}

// Current returns the injected Info if there is one, otherwise the toolchain's.
func Current() *Info {
	if info, ok := Parse(Injected); ok {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		return FromBuildInfo(bi)
	}

	return &Info{Version: "unknown"}
}

// DependencyNames returns the module paths of the dependencies, sorted.
func (i *Info) DependencyNames() []string {
	names := make([]string, 0, len(i.Dependencies))
	for name := range i.Dependencies {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
