// Package terminal decides whether report output should be colored.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/chronos-tachyon/huffmantext/internal/config"
)

// Environment abstracts the process state consulted by ShouldColor.
type Environment interface {
	Getenv(key string) string
	IsTerminal(fd uintptr) bool
}

type osEnvironment struct{}

func (osEnvironment) Getenv(key string) string {
	return os.Getenv(key)
}

func (osEnvironment) IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// OS is the Environment of the running process.
var OS Environment = osEnvironment{}

// ShouldColor resolves mode for output written to fd.  In auto mode color is
// used only when fd is a terminal, NO_COLOR is unset and TERM is neither
// empty nor "dumb".
func ShouldColor(mode config.ColorMode, fd uintptr, env Environment) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if env.Getenv("NO_COLOR") != "" {
		return false
	}
	termName := strings.ToLower(strings.TrimSpace(env.Getenv("TERM")))
	if termName == "" || termName == "dumb" {
		return false
	}
	return env.IsTerminal(fd)
}
