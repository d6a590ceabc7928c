// Package version carries the build version, overridden at link time:
//
//	go build -ldflags "-X pcrdesign/internal/version.Version=v1.2.3"
package version

var Version = "dev"
