package probe

import (
	"strings"

	"github.com/autobrr/go-ac3info/internal/ac3"
)

// channelLayout names the coded channels of cfg. LFE follows C when there is
// one and closes the list otherwise.
func channelLayout(cfg ac3.ChannelConfig) string {
	var layout []string
	switch cfg.Acmod {
	case 0, 2:
		layout = []string{"L", "R"}
	case 1:
		layout = []string{"C"}
	case 3:
		layout = []string{"L", "R", "C"}
	case 4:
		layout = []string{"L", "R", "S"}
	case 5:
		layout = []string{"L", "R", "C", "S"}
	case 6:
		layout = []string{"L", "R", "Ls", "Rs"}
	case 7:
		layout = []string{"L", "R", "C", "Ls", "Rs"}
	default:
		return ""
	}
	if !cfg.LFE {
		return strings.Join(layout, " ")
	}
	withLFE := make([]string, 0, len(layout)+1)
	inserted := false
	for _, ch := range layout {
		withLFE = append(withLFE, ch)
		if ch == "C" {
			withLFE = append(withLFE, "LFE")
			inserted = true
		}
	}
	if !inserted {
		withLFE = append(withLFE, "LFE")
	}
	return strings.Join(withLFE, " ")
}

// serviceKind names bsmod. bsmod 7 is voice over only for a mono service.
func serviceKind(cfg ac3.ChannelConfig) (name, code string) {
	switch cfg.Bsmod {
	case 0:
		return "Complete Main", "CM"
	case 1:
		return "Music and Effects", "ME"
	case 2:
		return "Visually Impaired", "VI"
	case 3:
		return "Hearing Impaired", "HI"
	case 4:
		return "Dialogue", "D"
	case 5:
		return "Commentary", "C"
	case 6:
		return "Emergency", "E"
	case 7:
		if cfg.Acmod == 1 {
			return "Voice Over", "VO"
		}
		return "Karaoke", "K"
	default:
		return "", ""
	}
}
