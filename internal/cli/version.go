package cli

import (
	"fmt"
	"io"

	"github.com/autobrr/go-ac3info/internal/probe"
)

var appVersion = "dev"

func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "%s, %s\n", probe.AppName, probe.FormatVersion(appVersion))
}
