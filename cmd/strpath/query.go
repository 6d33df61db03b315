package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atinylittleshell/strpath/internal/completion"
	"github.com/atinylittleshell/strpath/internal/headless"
	"github.com/atinylittleshell/strpath/internal/scope"
	"github.com/atinylittleshell/strpath/internal/styles"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type queryOptions struct {
	text     string
	file     string
	offset   int
	lang     string
	json     bool
	disabled bool
}

// queryOutput is the JSON form of a completion result.
type queryOutput struct {
	Result     string           `json:"result"`
	Flags      []string         `json:"flags,omitempty"`
	Candidates []queryCandidate `json:"candidates,omitempty"`
}

type queryCandidate struct {
	Trigger    string `json:"trigger"`
	Annotation string `json:"annotation,omitempty"`
	Kind       string `json:"kind"`
	Glyph      string `json:"glyph,omitempty"`
	Details    string `json:"details,omitempty"`
	Completion string `json:"completion"`
}

func newQueryCmd(a *app) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the path completions for a cursor position",
		Long: `Run a single completion query against a text and print the result.
The cursor defaults to the end of the text; --offset places it at a rune
offset instead.`,
		Example: `  strpath query --text 'open("/etc/'
  strpath query --file script.sh --offset 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := a.newManager(a.cfg.Enabled && !opts.disabled)
			if err != nil {
				return err
			}

			text, lang, err := opts.source(a.cfg.Language)
			if err != nil {
				return err
			}

			view := headless.New(1, text, lang)
			if opts.offset >= 0 {
				view.SetCursor(opts.offset)
			}

			l := manager.Attach(view)
			l.OnActivated()
			result := l.OnQueryCompletions("", []int{view.Cursor()})

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			writeTable(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "text to complete in")
	cmd.Flags().StringVar(&opts.file, "file", "", "read the text from a file")
	cmd.Flags().IntVar(&opts.offset, "offset", -1, "cursor rune offset (default end of text)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "language of the text (default from --file or config)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "start with path completion disabled")
	cmd.MarkFlagsMutuallyExclusive("text", "file")

	return cmd
}

// source returns the text to query and its language.
func (o *queryOptions) source(defaultLang string) (string, string, error) {
	text := o.text
	lang := o.lang

	if o.file != "" {
		content, err := os.ReadFile(o.file)
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", o.file, err)
		}
		text = string(content)
		if lang == "" {
			lang = scope.LanguageForFile(o.file)
		}
	} else if o.text == "" {
		return "", "", errors.New("one of --text or --file is required")
	}

	if lang == "" {
		lang = defaultLang
	}
	return text, lang, nil
}

func toOutput(result completion.Result) queryOutput {
	out := queryOutput{Result: result.Type.String()}
	if !result.HasSuggestions() {
		return out
	}

	if result.Flags.Has(completion.InhibitWordCompletions) {
		out.Flags = append(out.Flags, "inhibit_word_completions")
	}
	if result.Flags.Has(completion.InhibitExplicitCompletions) {
		out.Flags = append(out.Flags, "inhibit_explicit_completions")
	}

	out.Candidates = lo.Map(result.Candidates, func(c completion.Candidate, _ int) queryCandidate {
		return queryCandidate{
			Trigger:    c.Trigger,
			Annotation: c.Annotation,
			Kind:       c.Kind.ID.String(),
			Glyph:      c.Kind.Glyph,
			Details:    c.Details,
			Completion: c.Completion,
		}
	})
	return out
}

func writeJSON(w io.Writer, result completion.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toOutput(result))
}

func writeTable(w io.Writer, result completion.Result) {
	if !result.HasSuggestions() {
		fmt.Fprintln(w, styles.STATUS(result.Type.String()))
		return
	}
	if len(result.Candidates) == 0 {
		fmt.Fprintln(w, styles.DIM("(no entries)"))
		return
	}

	width := lo.Max(lo.Map(result.Candidates, func(c completion.Candidate, _ int) int {
		return len([]rune(c.Trigger))
	}))

	for _, c := range result.Candidates {
		name := c.Trigger + strings.Repeat(" ", width-len([]rune(c.Trigger)))
		switch c.Annotation {
		case "Dir":
			name = styles.DIRECTORY(name)
		default:
			name = styles.FILE(name)
		}

		line := name
		if c.Annotation != "" {
			line += "  " + styles.DIM(c.Annotation)
		}
		if c.Details != "" {
			line += "  " + styles.DIM(c.Details)
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
