package editor

import "github.com/charmbracelet/lipgloss"

const (
	ColorBlue   = lipgloss.Color("12")
	ColorYellow = lipgloss.Color("11")
	ColorGreen  = lipgloss.Color("10")
	ColorRed    = lipgloss.Color("9")
	ColorGray   = lipgloss.Color("8")
)

// RenderConfig holds styling configuration for the editor.
type RenderConfig struct {
	PromptStyle     lipgloss.Style
	TextStyle       lipgloss.Style
	StringStyle     lipgloss.Style
	CommentStyle    lipgloss.Style
	CursorStyle     lipgloss.Style
	TabStyle        lipgloss.Style
	ActiveTabStyle  lipgloss.Style
	PopupStyle      lipgloss.Style
	SelectedStyle   lipgloss.Style
	AnnotationStyle lipgloss.Style
	StatusStyle     lipgloss.Style
	EnabledStyle    lipgloss.Style
	DisabledStyle   lipgloss.Style
}

// DefaultRenderConfig returns the default editor styles.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		PromptStyle:    lipgloss.NewStyle().Foreground(ColorBlue),
		TextStyle:      lipgloss.NewStyle(),
		StringStyle:    lipgloss.NewStyle().Foreground(ColorGreen),
		CommentStyle:   lipgloss.NewStyle().Foreground(ColorGray).Italic(true),
		CursorStyle:    lipgloss.NewStyle().Reverse(true),
		TabStyle:       lipgloss.NewStyle().Foreground(ColorGray).Padding(0, 1),
		ActiveTabStyle: lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1),
		PopupStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorYellow),
		SelectedStyle:   lipgloss.NewStyle().Bold(true).Foreground(ColorYellow),
		AnnotationStyle: lipgloss.NewStyle().Foreground(ColorGray),
		StatusStyle:     lipgloss.NewStyle().Foreground(ColorGray),
		EnabledStyle:    lipgloss.NewStyle().Foreground(ColorGreen),
		DisabledStyle:   lipgloss.NewStyle().Foreground(ColorRed),
	}
}
