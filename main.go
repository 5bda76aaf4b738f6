package main

import (
	"fmt"
	"os"
	"strings"

	"cardboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logFile    string
	gridFlag   float64
	borderFlag float64
	noConfirm  bool
)

var rootCmd = &cobra.Command{
	Use:   "cardboard",
	Short: "A terminal board of cards and connectors",
	Long: `Cardboard is a zoomable board of cards linked by curved connectors.
Drag cards with the mouse, Alt-click two cards to link them, and copy or
paste whole groups with their links.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, config)

		logger, err := newLogger(logFile)
		if err != nil {
			return err
		}
		defer logger.Sync()

		p := tea.NewProgram(
			newModel(config, logger),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run board: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cardboard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cardboard version %s\n", strings.TrimSpace(version))
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	rootCmd.Flags().Float64Var(&gridFlag, "grid", board.DefaultGridSpacing, "grid spacing in pixels (10-200)")
	rootCmd.Flags().Float64Var(&borderFlag, "border", board.DefaultBorderWidth, "resize grab margin in pixels")
	rootCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompts")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, config *Config) {
	flags := cmd.Flags()
	if flags.Changed("grid") {
		config.GridSpacing = board.ClampGridSpacing(gridFlag)
	}
	if flags.Changed("border") && borderFlag > 0 {
		config.BorderWidth = borderFlag
	}
	if noConfirm {
		config.Confirmations = false
	}
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return logger, nil
}

func newModel(config *Config, logger *zap.Logger) model {
	prompter := &tuiPrompter{autoConfirm: !config.Confirmations}
	ctrl := board.NewController(nil,
		board.WithLogger(logger.Named("board")),
		board.WithPrompter(prompter),
		board.WithKeyBindings(config.Keys),
		board.WithBorderWidth(config.BorderWidth),
		board.WithGridSpacing(config.GridSpacing),
	)
	if config.StartScale != 1 {
		ctrl.Zoom(config.StartScale)
	}
	welcome := ctrl.AddCard()
	ctrl.SetCardTitle(welcome.ID, "Welcome")
	ctrl.SetCardText(welcome.ID, "b new card, e edit, Alt-click to link, ? help")

	return model{
		mode:     ModeNormal,
		board:    ctrl,
		prompter: prompter,
		bindings: config.Keys.Merge(board.DefaultKeyBindings()),
		config:   config,
		logger:   logger,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		m.collectPrompts()
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		switch m.mode {
		case ModeConfirm:
			return m.handleConfirmKey(msg.String())
		case ModeEditing:
			return m.handleEditKey(msg)
		case ModeFileInput:
			return m.handleFileInputKey(msg)
		default:
			return m.handleNormalKey(msg.String())
		}
	}
	return m, nil
}

// collectPrompts moves anything the engine asked of the prompter into the
// status line or a confirmation.
func (m *model) collectPrompts() {
	if notice := m.prompter.takeNotice(); notice != "" {
		m.errorMessage = notice
	}
	if question := m.prompter.takePending(); question != "" {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDeleteCards
		m.confirmText = question
	}
}

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	renderWidth := m.width
	if renderWidth < 1 {
		renderWidth = 80
	}
	renderHeight := m.height - 1
	if renderHeight < 1 {
		renderHeight = 24
	}

	v := m.boardView()
	canvas := NewCanvas(renderWidth, renderHeight, m.panX, m.panY)
	canvas.Draw(v)

	var result strings.Builder
	result.WriteString(strings.Join(canvas.Render(), "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusLine(v))
	return result.String()
}

// boardView is the engine view with the in-progress edit overlaid.
func (m model) boardView() board.View {
	v := m.board.View()
	if m.mode != ModeEditing {
		return v
	}
	for i := range v.Cards {
		if v.Cards[i].ID != m.editCardID {
			continue
		}
		runes := []rune(m.editText)
		pos := m.editCursorPos
		if pos > len(runes) {
			pos = len(runes)
		}
		shown := string(runes[:pos]) + "_" + string(runes[pos:])
		if m.editTarget == EditTitle {
			v.Cards[i].Title = shown
		} else {
			v.Cards[i].Text = shown
		}
	}
	return v
}

func (m model) statusLine(v board.View) string {
	var status string
	switch m.mode {
	case ModeConfirm:
		status = fmt.Sprintf("Mode: CONFIRM | %s (y/n)", m.confirmText)
	case ModeFileInput:
		status = fmt.Sprintf("Mode: EXPORT | PNG file: %s_ | Enter to save, Esc to cancel", m.filename)
	default:
		status = fmt.Sprintf("Mode: %s | Zoom: %.0f%% | Grid: %.0f | Selected: %d",
			m.modeString(v), v.Scale*100, v.GridSpacing, m.board.State().Selection.Len())
		if from := m.board.State().Selection.ConnectingFrom(); from != "" {
			status += fmt.Sprintf(" | Linking from %s (Alt-click target)", from)
		}
		if m.successMessage != "" {
			status += fmt.Sprintf(" | %s", m.successMessage)
		}
		if m.errorMessage == "" && m.successMessage == "" {
			status += " | ? for help | q to quit"
		}
	}
	status = statusStyle.Render(status)
	if m.errorMessage != "" && m.mode == ModeNormal {
		status += " " + errorStyle.Render("ERROR: "+m.errorMessage)
	}
	return status
}

func (m model) modeString(v board.View) string {
	switch m.mode {
	case ModeEditing:
		return "EDIT"
	case ModeFileInput:
		return "EXPORT"
	case ModeConfirm:
		return "CONFIRM"
	}
	if m.zPanMode {
		return "PAN"
	}
	if v.Mode == board.ModeIdle {
		return "NORMAL"
	}
	return strings.ToUpper(v.Mode.String())
}

func (m model) helpView() string {
	helpLines := []string{
		"Cardboard Help",
		"==============",
		"",
		"Mouse:",
		"  Click              Select a card (Ctrl/Shift-click toggles)",
		"  Drag card          Move the selection",
		"  Drag card edge     Resize the card",
		"  Drag background    Rectangle select (Ctrl/Shift adds)",
		"  Alt-click          Start a link, Alt-click another card to toggle it",
		"  Ctrl+wheel         Zoom",
		"  Wheel              Scroll",
		"",
		"Cards:",
		"  b                  New card",
		"  e / t              Edit text / title of the selected card",
		"  a                  Link from / to the selected card",
		"  d, Delete          Delete selected cards",
		"  Ctrl+C / Ctrl+V    Copy / paste with links",
		"  P                  Paste cards from the system clipboard",
		"  h/j/k/l, arrows    Nudge selection one grid step (Shift: two)",
		"",
		"View:",
		"  + / -              Zoom in / out",
		"  [ / ]              Grid spacing down / up",
		"  z                  Toggle pan mode (arrows pan)",
		"  S                  Export PNG",
		"  Esc                Clear selection and pending link",
		"  ?                  Toggle this help",
		"  q                  Quit",
	}
	return strings.Join(helpLines, "\n")
}
