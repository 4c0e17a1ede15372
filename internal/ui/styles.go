package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - Salvation Army brand colors
var (
	RedColor     = lipgloss.Color("#CE0000") // Primary brand color
	YellowColor  = lipgloss.Color("#FBD356") // Secondary brand color
	BlueColor    = lipgloss.Color("#1D3C6A") // Navy
	TextColor    = lipgloss.Color("#1A1A1A") // Softer black for reading
	VerseColor   = lipgloss.Color("#2B2B2B") // Normal lyric lines
	SubtleColor  = lipgloss.Color("#666666") // Gray for secondary text
	WhiteColor   = lipgloss.Color("#FFFFFF")
	OffWhite     = lipgloss.Color("#F9F9F9")
	ErrorColor   = lipgloss.Color("#B00020")
	EventGreen   = lipgloss.Color("#2E7D32")
	CapsuleColor = lipgloss.Color("#8E0000") // Inactive capsule on the red header
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(RedColor).
			MarginLeft(2)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WhiteColor).
			Background(RedColor).
			Padding(0, 2)

	SearchBarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(RedColor).
			Padding(0, 1).
			MarginLeft(2)

	CapsuleStyle = lipgloss.NewStyle().
			Foreground(WhiteColor).
			Background(CapsuleColor).
			Bold(true).
			Padding(0, 1)

	CapsuleActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(YellowColor).
				Bold(true).
				Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 2)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 1).
			MarginTop(1)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true).
			Padding(2, 4)

	NoticeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Foreground(WhiteColor).
			Background(lipgloss.Color("#333333")).
			Padding(0, 2)

	ErrorNoticeStyle = NoticeBoxStyle.
				BorderForeground(ErrorColor)

	AboutBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(RedColor).
			Background(OffWhite).
			Foreground(TextColor).
			Padding(1, 3)

	LoginBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(RedColor).
			Padding(1, 4)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(WhiteColor).
			Background(RedColor).
			Bold(true).
			Padding(0, 2)

	ButtonMutedStyle = lipgloss.NewStyle().
				Foreground(RedColor).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(RedColor).
				Padding(0, 2)

	RefChipStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	TuneChipStyle = lipgloss.NewStyle().
			Foreground(RedColor).
			Bold(true)
)
