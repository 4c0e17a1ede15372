package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"saconnect/internal/app"
	"saconnect/internal/auth"
	"saconnect/internal/config"
	"saconnect/internal/songs"
	"saconnect/internal/state"
)

// Set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	configPath   string
	songsPath    string
	logFile      string
	logLevel     string
	song         string
	hashPassword string
	showVersion  bool
	help         bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, *pflag.FlagSet, error) {
	var opts options
	flagSet := pflag.NewFlagSet("saconnect", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.configPath, "config", "", "path to config.yaml (default: user config dir)")
	flagSet.StringVar(&opts.songsPath, "songs", "", "song dataset (.json or .yaml) instead of the bundled one")
	flagSet.StringVar(&opts.logFile, "log-file", "", "write JSON log records to this file")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flagSet.StringVar(&opts.song, "song", "", "open this song number right after sign-in")
	flagSet.StringVar(&opts.hashPassword, "hash-password", "", "print a bcrypt hash of the password for config accounts and exit")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		return nil, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return nil, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return &opts, flagSet, nil
}

func run(args []string, stdout io.Writer) error {
	opts, flagSet, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stdout)
			return nil
		}
		return err
	}

	switch {
	case opts.help:
		printHelp(flagSet, stdout)
		return nil
	case opts.showVersion:
		fmt.Fprintf(stdout, "saconnect %s (commit %s, built %s)\n", version, commit, date)
		return nil
	case opts.hashPassword != "":
		hash, err := auth.HashPassword(opts.hashPassword)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, hash)
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting", "version", version, "commit", commit)
	catalog := loadCatalog(cfg.SongsPath, logger)

	m := app.NewModel(app.Options{
		Catalog:       catalog,
		Auth:          auth.NewLocal(cfg.Accounts(), cfg.Auth.AllowGuest),
		Logger:        logger,
		FontScale:     cfg.FontScale(),
		Transition:    cfg.Transition(),
		NoticeTimeout: cfg.NoticeTimeout(),
		About:         app.AboutInfo{Version: version, Commit: commit, Date: date},
		StartSong:     opts.song,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	logger.Info("exiting")
	return nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.songsPath != "" {
		cfg.SongsPath = opts.songsPath
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.logLevel != "" {
		if _, err := config.ParseLevel(opts.logLevel); err != nil {
			return nil, err
		}
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

// openLogger opens the JSON log file. The terminal belongs to the TUI, so
// nothing is logged to stderr.
func openLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.LogFile
	if path == "" {
		path, err = state.DefaultLogPath()
		if err != nil {
			return nil, nil, err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

// loadCatalog loads the dataset at path, or the bundled one when path is
// empty. Failures are logged and leave an empty catalog.
func loadCatalog(path string, logger *slog.Logger) *songs.Catalog {
	fsys, name := songs.Bundled(), songs.BundledName
	if path != "" {
		fsys, name = os.DirFS(filepath.Dir(path)), filepath.Base(path)
	}

	catalog, err := songs.Load(fsys, name)
	if err != nil {
		logger.Warn("failed to load song catalog", "path", path, "error", err)
		return catalog
	}
	logger.Info("song catalog loaded", "path", path, "songs", catalog.Len())
	return catalog
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `saconnect, the Salvation Army corps songbook for the terminal.

Browse the bundled Marathi/English songbook by number, title or
category, and read lyrics with chorus and stanza highlighting.

Usage:
  saconnect [flags]

Examples:
  # Open with the bundled songbook
  saconnect

  # Use a different dataset and go straight to song 23 after sign-in
  saconnect --songs ./songs.yaml --song 23

  # Create a password hash for a config account
  saconnect --hash-password 'secret'

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
