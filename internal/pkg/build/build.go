// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

// package build holds build-time information.
package build

// Version of the statespace binary, overridden at build time via
// -ldflags "-X github.com/vojtechpavlu/StateSpaceFW/internal/pkg/build.Version=...".
var Version = "0.1.0"
