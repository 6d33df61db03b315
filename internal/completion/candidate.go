package completion

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// KindID is the icon category a host uses to decorate a candidate.
type KindID int

const (
	// KindAmbiguous marks entries whose type could not be determined.
	KindAmbiguous KindID = iota
	// KindMarkup marks files and directories.
	KindMarkup
)

// String returns the string representation of a KindID.
func (k KindID) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	default:
		return "ambiguous"
	}
}

// Kind is the icon triple shown next to a candidate.
type Kind struct {
	ID          KindID
	Glyph       string
	Description string
}

// Candidate is a single completion suggestion.
type Candidate struct {
	// Trigger is the text shown in the popup.
	Trigger string
	// Annotation is the short category shown on the right ("Dir", "File").
	Annotation string
	// Kind is the icon category, glyph and detail label.
	Kind Kind
	// Details is optional extra information such as the file size.
	Details string
	// Completion is the text inserted when the candidate is accepted.
	Completion string
}

// EntryType classifies a directory entry after following symlinks.
type EntryType int

const (
	EntryOther EntryType = iota
	EntryDir
	EntryFile
)

// entryType resolves the type of an entry inside dir. Symlinks are followed;
// a dangling link is neither a file nor a directory.
func entryType(dir string, entry fs.DirEntry) (EntryType, fs.FileInfo) {
	mode := entry.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			return EntryOther, nil
		}
		mode = info.Mode()
		return classifyMode(mode), info
	}
	return classifyMode(mode), nil
}

func classifyMode(mode fs.FileMode) EntryType {
	switch {
	case mode.IsDir():
		return EntryDir
	case mode.IsRegular():
		return EntryFile
	default:
		return EntryOther
	}
}

// newCandidate builds the candidate for one entry of dir.
func newCandidate(dir string, entry fs.DirEntry, showSize bool) Candidate {
	name := entry.Name()
	typ, info := entryType(dir, entry)

	c := Candidate{Kind: Kind{ID: KindAmbiguous}}
	switch typ {
	case EntryDir:
		name += Separator
		c.Annotation = "Dir"
		c.Kind = Kind{ID: KindMarkup, Glyph: "📁", Description: "Directory"}
	case EntryFile:
		c.Annotation = "File"
		c.Kind = Kind{ID: KindMarkup, Glyph: "📄", Description: "File"}
		if showSize {
			if info == nil {
				info, _ = entry.Info()
			}
			if info != nil {
				c.Details = "Size: " + humanize.Bytes(uint64(info.Size()))
			}
		}
	}

	c.Trigger = name
	c.Completion = name
	return c
}
