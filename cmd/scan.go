// file: cmd/scan.go
// version: 1.1.0
// guid: 8f0a2b4c-6d7e-8f9a-0b1c-2d3e4f5a6b7c

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jdfalk/audiotag/internal/config"
	"github.com/jdfalk/audiotag/internal/handlers"
	"github.com/jdfalk/audiotag/internal/scanner"
	"github.com/jdfalk/audiotag/internal/watcher"
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Scan a directory tree for audio files",
	Long:  `Scan a directory tree, read metadata from every recognized audio file, and summarize what was found.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := handlers.NewResolver()
		s := scanner.New(resolver, config.AppConfig.ScanWorkers, config.AppConfig.CacheTTL)

		entries, err := s.Scan(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("scan error: %w", err)
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, e := range entries {
			if e.Err != nil {
				failed++
				fmt.Fprintf(out, "FAILED %s: %v\n", e.Path, e.Err)
				continue
			}
			fmt.Fprintf(out, "%s — %s / %s / %s (track %d, %d pictures)\n",
				e.Path, e.Artist, e.AlbumTitle, e.Title, e.TrackNumber, e.Pictures)
		}
		fmt.Fprintf(out, "Scanned %d files, %d failed\n", len(entries), failed)
		return nil
	},
}

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and rescan files as they change",
	Long: `Watch a directory tree for changes to audio files and re-read the
metadata of changed files once the changes settle.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := handlers.NewResolver()
		s := scanner.New(resolver, config.AppConfig.ScanWorkers, config.AppConfig.CacheTTL)

		rescan := func(paths []string) {
			for _, path := range paths {
				rec, err := readRecord(path)
				if err != nil {
					log.Printf("[WARN] failed to re-read %s: %v", path, err)
					continue
				}
				title, _ := rec.Title()
				artist, _ := rec.Artist()
				fmt.Fprintf(cmd.OutOrStdout(), "Changed: %s — %s / %s\n", path, artist, title)
			}
		}

		w := watcher.New(resolver.Registry().Extensions(), rescan, config.AppConfig.WatchDebounce)
		if err := w.Start(args[0]); err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer w.Stop()

		// Initial pass so the cache is warm before the event loop runs.
		if _, err := s.Scan(context.Background(), args[0]); err != nil {
			log.Printf("[WARN] initial scan failed: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl-C to stop)\n", args[0])
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		return nil
	},
}
