package conversation

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func containsText(view, s string) bool {
	return strings.Contains(ansi.Strip(view), s)
}
