package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/huekit/internal/config"
	"github.com/alexisbeaulieu97/huekit/internal/logger"
	"github.com/alexisbeaulieu97/huekit/internal/tui"
	ui "github.com/alexisbeaulieu97/huekit/internal/ui/components"
)

type pickOptions struct {
	ConfigPath    string
	Modes         []string
	DefaultValue  string
	DeriveDefault bool
	ShowAlpha     bool
	ShowPreview   bool
	Swatches      []string
	Actions       []string
	Size          string
	Theme         string
	Disabled      bool
	LogFile       string
}

// pickRequest is everything a picker run needs.
type pickRequest struct {
	Config *config.PanelConfig
	// Log writes to the terminal. It is used only before and after the
	// program runs.
	Log *logger.Logger
	// ModelLog is handed to the running program and never writes to Screen.
	ModelLog *logger.Logger
	// Screen receives the rendered frames.
	Screen io.Writer
	// Out receives the picked colour.
	Out io.Writer
}

var (
	pickCmdRunner = runPick
	isTerminal    = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

func newPickCmd(root *rootFlags) *cobra.Command {
	opts := pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive colour picker and print the chosen colour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := commandLogger(root, cmd.ErrOrStderr(), "command.pick")
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			cfg, err := loadPickConfig(cmd, opts)
			if err != nil {
				log.Error(err, "invalid picker configuration")
				return err
			}

			if !isTerminal() {
				return fmt.Errorf("pick needs an interactive terminal")
			}

			modelLog, closeLog, err := sessionLogger(root, opts.LogFile)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer closeLog() //nolint:errcheck

			return pickCmdRunner(pickRequest{
				Config:   cfg,
				Log:      log,
				ModelLog: modelLog,
				Screen:   cmd.ErrOrStderr(),
				Out:      cmd.OutOrStdout(),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a panel configuration file")
	flags.StringSliceVar(&opts.Modes, "modes", nil, "Input modes in cycling order (rgb, hex, hsl, hsv)")
	flags.StringVar(&opts.DefaultValue, "default", "", "Initial colour")
	flags.BoolVar(&opts.DeriveDefault, "derive-default", false, "Start from black encoded in the first mode")
	flags.BoolVar(&opts.ShowAlpha, "show-alpha", true, "Show the alpha slider")
	flags.BoolVar(&opts.ShowPreview, "show-preview", false, "Show the preview block")
	flags.StringSliceVar(&opts.Swatches, "swatches", nil, "Preset colours")
	flags.StringSliceVar(&opts.Actions, "actions", nil, "Action buttons (clear, undo, redo)")
	flags.StringVar(&opts.Size, "size", "", "Panel size (small, medium, large)")
	flags.StringVar(&opts.Theme, "theme", "", "Colour theme (light, dark)")
	flags.BoolVar(&opts.Disabled, "disabled", false, "Render the panel read-only")
	flags.StringVar(&opts.LogFile, "log-file", "", "Write picker logs to this file while it runs")

	return cmd
}

// loadPickConfig reads the optional configuration file and overlays the flags
// the user set explicitly.
func loadPickConfig(cmd *cobra.Command, opts pickOptions) (*config.PanelConfig, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		parsed, err := config.ParseConfig(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	flags := cmd.Flags()
	if flags.Changed("modes") {
		cfg.Modes = opts.Modes
	}
	if flags.Changed("default") {
		cfg.DefaultValue = opts.DefaultValue
	}
	if flags.Changed("derive-default") {
		cfg.DeriveDefault = opts.DeriveDefault
	}
	if flags.Changed("show-alpha") {
		showAlpha := opts.ShowAlpha
		cfg.ShowAlpha = &showAlpha
	}
	if flags.Changed("show-preview") {
		cfg.ShowPreview = opts.ShowPreview
	}
	if flags.Changed("swatches") {
		cfg.Swatches = opts.Swatches
	}
	if flags.Changed("actions") {
		cfg.Actions = opts.Actions
	}
	if flags.Changed("size") {
		cfg.Size = opts.Size
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.Theme
	}
	if flags.Changed("disabled") {
		cfg.Disabled = opts.Disabled
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sessionLogger returns the logger used while the program owns the
// terminal. Entries go to path, or nowhere when path is empty.
func sessionLogger(flags *rootFlags, path string) (*logger.Logger, func() error, error) {
	if path == "" {
		return logger.Nop(), func() error { return nil }, nil
	}

	f, err := tea.LogToFile(path, "huekit")
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(logger.Options{Level: logLevel(flags), Writer: f})
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return log.Component("picker"), f.Close, nil
}

func runPick(req pickRequest) error {
	cfg := req.Config
	theme, err := ui.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Config{
		Options: cfg.Options(),
		Locale:  cfg.PanelLocale(),
		Theme:   &theme,
		Logger:  req.ModelLog,
	})

	log := req.Log.WithFields(map[string]any{"theme": cfg.Theme, "size": cfg.Size})
	log.Info("launching picker")
	final, err := tea.NewProgram(model, tea.WithOutput(req.Screen), tea.WithAltScreen()).Run()
	if err != nil {
		log.Error(err, "picker execution failed")
		return fmt.Errorf("failed to run picker: %w", err)
	}

	picked, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if value, present := picked.Value().Get(); present {
		fmt.Fprintln(req.Out, value)
	}
	log.Info("picker closed")
	return nil
}
