package styles

import (
	"os"

	"github.com/muesli/termenv"
)

var (
	stdout = termenv.NewOutput(os.Stdout)
	stderr = termenv.NewOutput(os.Stderr)

	ERROR = func(s string) string {
		return stderr.String(s).
			Foreground(stderr.Color("9")).
			String()
	}
	DIRECTORY = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("12")).
			Bold().
			String()
	}
	FILE = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("7")).
			String()
	}
	DIM = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("8")).
			String()
	}
	STATUS = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("11")).
			Italic().
			String()
	}
)

// DisableColor strips colors from all styles, for --no-color and pipes.
func DisableColor() {
	stdout = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	stderr = termenv.NewOutput(os.Stderr, termenv.WithProfile(termenv.Ascii))
}
