package completion

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Separator is the platform path separator as a string.
const Separator = string(os.PathSeparator)

// StripQuotes removes one leading and one trailing quote character (" or ')
// from s. The text typed inside a string literal is read from the start of
// the whole string scope, so it usually begins with the opening quote.
func StripQuotes(s string) string {
	if s != "" && isQuote(s[0]) {
		s = s[1:]
	}
	if s != "" && isQuote(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

// SplitPath splits path immediately following the final separator into a
// directory part and the remainder typed after it. The directory part keeps
// its trailing separator: "/tmp/" splits into ("/tmp/", "") and "~/Desk"
// into ("~/", "Desk").
func SplitPath(path string) (dir, remainder string) {
	return filepath.Split(path)
}

// CleanDir strips trailing separators from a directory part unless it
// consists only of separators, in which case it names the root.
func CleanDir(dir string) string {
	if dir == "" {
		return dir
	}
	trimmed := strings.TrimRight(dir, Separator)
	if trimmed == filepath.VolumeName(trimmed) {
		return dir
	}
	return trimmed
}

// ExpandHome replaces a leading "~" or "~user" with that user's home
// directory. Paths that do not start with "~", or whose user cannot be
// resolved, are returned unchanged.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	name, rest := path[1:], ""
	if i := strings.IndexAny(name, `/`+Separator); i >= 0 {
		name, rest = name[:i], name[i:]
	}

	var home string
	if name == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		home = dir
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return path
		}
		home = u.HomeDir
	}

	if rest == "" {
		return home
	}
	return strings.TrimRight(home, Separator) + rest
}
