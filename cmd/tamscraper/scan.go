package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tamscraper/internal/config"
	"tamscraper/internal/logging"
	"tamscraper/internal/pipeline"
)

type scanOptions struct {
	ConfigPath string
	Root       string
	LogLevel   string
	NoPause    bool
}

func runScan(cmd *cobra.Command, opts scanOptions) error {
	root, err := resolveScanRoot(opts.Root)
	if err != nil {
		return err
	}

	cfg, cfgPath, cfgExists, err := config.Load(opts.ConfigPath, root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logging.Level
	if strings.TrimSpace(opts.LogLevel) != "" {
		level = opts.LogLevel
	}
	logger, err := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	runID := uuid.NewString()
	banner := []logging.Attr{
		logging.String("version", version),
		logging.String(logging.FieldRunID, runID),
		logging.String("root", root),
	}
	if cfgExists {
		banner = append(banner, logging.String("config", cfgPath))
	}
	logger.Info("tamscraper starting", logging.Args(banner...)...)

	lock, err := pipeline.AcquireLock(root)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	started := time.Now()
	stats, err := pipeline.New(cfg, logger).Run(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderSummary(stats, time.Since(started)))

	if cfg.Scan.Pause && !opts.NoPause {
		pauseBeforeExit(out)
	}
	return nil
}

// resolveScanRoot picks the directory to scan. Without an explicit flag the
// tool operates on the directory it was launched from, matching a
// drop-the-binary-next-to-the-ROMs workflow.
func resolveScanRoot(flag string) (string, error) {
	if strings.TrimSpace(flag) != "" {
		expanded, err := config.ExpandPath(flag)
		if err != nil {
			return "", fmt.Errorf("resolve scan root: %w", err)
		}
		info, err := os.Stat(expanded)
		if err != nil {
			return "", fmt.Errorf("scan root: %w", err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("scan root %s is not a directory", expanded)
		}
		return expanded, nil
	}

	exe, err := os.Executable()
	if err == nil {
		if dir := filepath.Dir(exe); dir != "" && dir != "." {
			return dir, nil
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return wd, nil
}

// pauseBeforeExit blocks until Enter is pressed, but only on a real terminal
// so scripted runs never hang.
func pauseBeforeExit(out io.Writer) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return
	}
	fmt.Fprint(out, "Press Enter to exit...")
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
}
