package main

import (
	"errors"
	"os"

	"github.com/atinylittleshell/strpath/internal/editor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newEditCmd(a *app) *cobra.Command {
	var lang string
	var text string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open a small editor with path completion",
		Long: `Open a terminal editor with one line per tab. Type a quoted path such as
"~/ and the entries of that directory are offered as completions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("edit requires an interactive terminal")
			}

			manager, err := a.newManager(a.cfg.Enabled)
			if err != nil {
				return err
			}

			if lang == "" {
				lang = a.cfg.Language
			}

			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				width = 80
			}

			model := editor.New(editor.Config{
				Manager: manager,
				Text:    text,
				Lang:    lang,
				Width:   width,
				Logger:  a.logger.Named("editor"),
			})

			_, err = tea.NewProgram(model, tea.WithReportFocus()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "language of the document (plain, sh, python, go, ...)")
	cmd.Flags().StringVar(&text, "text", "", "initial text of the first tab")

	return cmd
}
