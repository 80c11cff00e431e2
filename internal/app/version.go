package app

import "strings"

// Set at build time, e.g.
// go build -ldflags "-X github.com/heartmarshall/conceptdeck-backend/internal/app.Version=1.4.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns the version reported in startup logs and /health.
// Empty build metadata is omitted.
func BuildVersion() string {
	var b strings.Builder
	b.WriteString(Version)
	if Commit != "" {
		b.WriteString("+")
		b.WriteString(Commit)
	}
	if BuildTime != "" {
		b.WriteString(" (")
		b.WriteString(BuildTime)
		b.WriteString(")")
	}
	return b.String()
}
