// Package lintel holds project-wide metadata.
package lintel

// Version is the lintel release version.
const Version = "0.1.0"
