package probe

import "strings"

const (
	AppName = "go-ac3info"
	AppURL  = "https://github.com/autobrr/go-ac3info"
)

var AppVersion = "dev"

func SetAppVersion(version string) {
	if version != "" {
		AppVersion = version
	}
}

// FormatVersion renders a version for display, "v1.2.3" or "dev".
func FormatVersion(version string) string {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" || version == "dev" {
		return "dev"
	}
	return "v" + version
}
