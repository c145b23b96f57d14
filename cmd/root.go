package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/pccleaner/internal/catalog"
	"github.com/lakshaymaurya-felt/pccleaner/internal/clean"
	"github.com/lakshaymaurya-felt/pccleaner/internal/config"
	"github.com/lakshaymaurya-felt/pccleaner/internal/core"
	"github.com/lakshaymaurya-felt/pccleaner/internal/instance"
	"github.com/lakshaymaurya-felt/pccleaner/internal/logging"
	"github.com/lakshaymaurya-felt/pccleaner/internal/sweep"
	"github.com/lakshaymaurya-felt/pccleaner/internal/ui"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// app is the state shared by commands, built once per process.
type app struct {
	lock     *instance.Lock
	folders  config.Folders
	settings config.Settings
	logger   *zap.Logger
	logFile  io.Closer
	cleaner  *clean.Cleaner
}

var current *app

// errShown marks errors already printed to the user.
var errShown = errors.New("error already reported")

var rootCmd = &cobra.Command{
	Use:   "pcc",
	Short: "Clear cache and temp files from your PC",
	Long: `PC Cleaner - clear cache and temp files from your PC.

Empties Windows temp folders, Windows Update downloads, Steam, Discord,
NVIDIA shader and browser caches. Files in use are skipped and counted.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: bootstrap,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When invoked without subcommand, show interactive menu
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return cmd.Help()
		}
		return ui.RunMenu(current.cleaner)
	},
}

// Execute runs the root command and prints any error.
func Execute() error {
	err := rootCmd.Execute()
	shutdown()
	if err != nil && !errors.Is(err, errShown) {
		fmt.Fprintln(os.Stderr, ui.RenderError(userMessage(err)))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// needsBootstrap reports whether the named command takes the
// single-instance lock. Commands that never touch the filesystem do not.
func needsBootstrap(name string) bool {
	switch name {
	case "version", "completion", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return true
}

// bootstrap takes the single-instance lock and wires settings, logging and
// the cleaner.
func bootstrap(cmd *cobra.Command, args []string) error {
	if !needsBootstrap(cmd.Name()) {
		return nil
	}

	lock, err := instance.Acquire(instance.DefaultName)
	if err != nil {
		return err
	}

	folders := config.DetectFolders()
	settings, err := config.LoadSettings(folders)
	if err != nil {
		lock.Release()
		return err
	}
	settings.Debug = debug

	logger, logFile, err := logging.New(settings)
	if err != nil {
		// Cleaning works without a log file.
		fmt.Fprintln(os.Stderr, ui.RenderError(err.Error()))
		logger = zap.NewNop()
	}

	fs := afero.NewOsFs()
	engine := sweep.New(fs,
		sweep.WithWorkers(settings.Workers),
		sweep.WithLogger(logger.Named("sweep")))

	current = &app{
		lock:     lock,
		folders:  folders,
		settings: settings,
		logger:   logger,
		logFile:  logFile,
		cleaner: clean.New(catalog.New(fs, folders), engine,
			logger.Named("clean"), core.IsElevated()),
	}

	logger.Debug("started",
		zap.String("version", appVersion),
		zap.String("os", core.OSVersionString()),
		zap.Bool("elevated", current.cleaner.Elevated),
		zap.Int("workers", settings.Workers))
	return nil
}

func shutdown() {
	if current == nil {
		return
	}
	_ = current.logger.Sync()
	if current.logFile != nil {
		_ = current.logFile.Close()
	}
	_ = current.lock.Release()
	current = nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, instance.ErrAlreadyRunning):
		return ui.MsgAlreadyRunning
	default:
		return err.Error()
	}
}
