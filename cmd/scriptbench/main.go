// cmd/scriptbench/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	stlog "log" // Use standard log for errors before logger is ready
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bethropolis/scriptbench"
	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/tui"
)

var flags config.Flags

var rootCmd = &cobra.Command{
	Use:   config.AppName + " [flags]",
	Short: "Edit a short script in the terminal and print it",
	Long: `Opens a framed, line-numbered editor at the current terminal row.
Press Esc twice to finish (Enter in single-line mode); the edited text is
then printed to stdout, highlighted unless --no-highlight is given.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags.DefineFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	// --- Settings ---
	settings, err := config.LoadSettings(cmd.Flags(), &flags)
	if err != nil {
		if !errors.Is(err, config.ErrMalformed) {
			return err
		}
		stlog.Printf("Warning: %v; using defaults", err)
	}

	// --- Logger Initialization ---
	var logOutput io.Writer = io.Discard
	if path := settings.Logger.LogFilePath; path != "" {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("failed to open log file '%s': %w", path, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.InitWithConfig(settings.Logger, logOutput)
	logger.Infof("Starting %s (single-line=%v)", config.AppName, flags.SingleLine)

	// --- Create and Run Bench ---
	var h scriptbench.Highlighter
	if !flags.NoHighlight {
		h = scriptbench.NewHighlighter(settings)
	}
	bench, err := scriptbench.New(scriptbench.Config{
		Settings:     settings,
		SettingsPath: flags.ConfigFilePath,
		FirstLine:    flags.FirstLine,
		SingleLine:   flags.SingleLine,
		Highlight:    h != nil,
		Highlighter:  h,
	})
	if err != nil {
		return err
	}
	lines, err := bench.Run()
	if err != nil {
		logger.Errorf("Session failed: %v", err)
		return err
	}

	// --- Print the result once the screen is released ---
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
	}
	out := tui.NewStream(os.Stdout, width)
	scriptbench.Write(out, strings.Join(lines, "\n")+"\n", h)
	logger.Infof("%s finished", config.AppName)
	return out.Err()
}
