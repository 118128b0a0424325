// Package version provides the jsprint version constant.
package version

// Version is the current jsprint version.
const Version = "0.3.0"
