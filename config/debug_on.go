//go:build debug

package config

// DebugBuild is true when the binary was built with -tags debug.
const DebugBuild = true
