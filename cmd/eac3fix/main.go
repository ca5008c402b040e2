package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/s0up4200/go-eac3fix/internal/report"
	"github.com/s0up4200/go-eac3fix/pkg/eac3fix"
)

var version = "dev"

type rootOptions struct {
	noProgress bool
	quiet      bool
	selfUpdate bool
}

var opts rootOptions

var rootCmd = &cobra.Command{
	Use:   "eac3fix <input> <output>",
	Short: "Repair compression and chanmap metadata in E-AC-3 Atmos streams.",
	Long: "Forces the dynamic range compression fields of every E-AC-3 frame and\n" +
		"corrects the channel map of dependent substreams in a raw AC-3/E-AC-3\n" +
		"elementary stream. Frame checksums are recomputed as needed.",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update eac3fix",
	Long:  "Update eac3fix to latest version (release builds only).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelfUpdate(cmd.Context())
	},
	DisableFlagsInUseLine: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "eac3fix version: %s\n", version)
		return nil
	},
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Disable the progress bar")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the summary block")
	rootCmd.Flags().BoolVar(&opts.selfUpdate, "self-update", false, "Update eac3fix to latest version (release builds only)")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "eac3fix: %s\n", err.Error())
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if opts.selfUpdate {
		return runSelfUpdate(cmd.Context())
	}

	inputPath, outputPath := args[0], args[1]

	var onProgress func(current, total int64)
	var pw progress.Writer
	var tracker *progress.Tracker
	if !opts.noProgress && isatty.IsTerminal(os.Stdout.Fd()) {
		pw = progress.NewWriter()
		pw.SetOutputWriter(os.Stdout)
		pw.SetTrackerLength(42)
		pw.SetUpdateFrequency(100 * time.Millisecond)
		pw.Style().Visibility.TrackerOverall = false
		tracker = &progress.Tracker{Message: "Patching", Units: progress.UnitsBytes}
		pw.AppendTracker(tracker)
		go pw.Render()
		onProgress = func(current, total int64) {
			tracker.UpdateTotal(total)
			tracker.SetValue(current)
		}
	}

	stats, err := eac3fix.Run(inputPath, outputPath, eac3fix.Options{OnProgress: onProgress})
	if pw != nil {
		if err == nil {
			tracker.MarkAsDone()
		} else {
			tracker.MarkAsErrored()
		}
		pw.Stop()
		for pw.IsRenderInProgress() {
			time.Sleep(10 * time.Millisecond)
		}
	}
	if err != nil {
		return err
	}

	if !opts.quiet {
		report.WriteSummary(os.Stdout, stats)
	}
	return nil
}

func runSelfUpdate(ctx context.Context) error {
	if version == "" || version == "dev" {
		return errors.New("self-update is only available in release builds")
	}

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("could not parse version: %w", err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug("s0up4200/go-eac3fix"))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", "s0up4200/go-eac3fix", version)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current binary is the latest version: %s\n", version)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version: %s\n", latest.Version())
	return nil
}
