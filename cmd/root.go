// file: cmd/root.go
// version: 1.2.0
// guid: 3e5a7c9b-2d4f-6a8b-0c1d-2e3f4a5b6c7d

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jdfalk/audiotag/internal/config"
	"github.com/jdfalk/audiotag/internal/fields"
	"github.com/jdfalk/audiotag/internal/formats"
	"github.com/jdfalk/audiotag/internal/handlers"
	"github.com/jdfalk/audiotag/internal/metrics"
	"github.com/jdfalk/audiotag/internal/record"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audiotag",
	Short: "Read, edit, and copy audio file metadata",
	Long: `Audiotag reads metadata and embedded artwork from audio files,
tracks edits against the saved state, and writes changes back safely
with backup and rollback.

Supported formats: FLAC, MP3, MP4/M4A/M4B, Ogg, WAV.`,
}

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Read metadata from an audio file",
	Long:  `Read metadata and artwork from an audio file and print it as key: value pairs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := readRecord(args[0])
		if err != nil {
			return err
		}
		printRecord(cmd, rec)
		return nil
	},
}

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Dump metadata as an XML property list",
	Long: `Read metadata from an audio file and write its external
representation as an XML property list, to stdout or to --out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := readRecord(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if dumpOut != "" {
			f, err := os.Create(dumpOut)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err := rec.EncodePropertyList(out); err != nil {
			return fmt.Errorf("failed to encode property list: %w", err)
		}
		return nil
	},
}

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load <file> <plist>",
	Short: "Load metadata from a property list into an audio file",
	Long: `Decode a property list produced by the dump command and write its
fields and pictures into an audio file, replacing what is there.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open property list: %w", err)
		}
		defer src.Close()

		loaded, err := record.DecodePropertyList(src)
		if err != nil {
			return fmt.Errorf("failed to decode property list: %w", err)
		}

		// Resolve returns the handler with the file already read.
		h, err := handlers.NewResolver().Resolve(args[0])
		if err != nil {
			return describeFormatError(err)
		}

		rec := h.Record()
		rec.CopyFields(fields.All, loaded)
		rec.CopyPicturesFrom(loaded)

		if err := h.Write(); err != nil {
			return describeFormatError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote metadata to %s\n", args[0])
		return nil
	},
}

var (
	dumpOut        string
	copyFieldNames []string
	copyPictures   bool
)

// copyCmd represents the copy command
var copyCmd = &cobra.Command{
	Use:   "copy <source> <destination>",
	Short: "Copy metadata between audio files",
	Long: `Copy metadata from one audio file to another. The --fields flag
selects which field groups to copy (basic, sort, grouping, additional,
replaygain, or all); --pictures copies the attached artwork too.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mask, err := parseCategories(copyFieldNames)
		if err != nil {
			return err
		}

		src, err := readRecord(args[0])
		if err != nil {
			return err
		}

		h, err := handlers.NewResolver().Resolve(args[1])
		if err != nil {
			return describeFormatError(err)
		}

		dst := h.Record()
		dst.CopyFields(mask, src)
		if copyPictures {
			dst.CopyPicturesFrom(src)
		}

		if err := h.Write(); err != nil {
			return describeFormatError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied metadata from %s to %s\n", args[0], args[1])
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.audiotag.yaml)")
	rootCmd.PersistentFlags().String("backup-dir", ".audiotag-backups", "directory for write backups")
	rootCmd.PersistentFlags().Bool("keep-backups", false, "keep backup files after a successful write")

	viper.BindPFlag("backup_dir", rootCmd.PersistentFlags().Lookup("backup-dir"))
	viper.BindPFlag("keep_backups", rootCmd.PersistentFlags().Lookup("keep-backups"))

	dumpCmd.Flags().StringVar(&dumpOut, "out", "", "write the property list to this file instead of stdout")
	copyCmd.Flags().StringSliceVar(&copyFieldNames, "fields", []string{"all"}, "field groups to copy: basic, sort, grouping, additional, replaygain, all")
	copyCmd.Flags().BoolVar(&copyPictures, "pictures", false, "also copy attached pictures")

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(watchCmd)

	// Add scan command specific flags
	scanCmd.Flags().Int("workers", 4, "number of concurrent scan workers")
	viper.BindPFlag("scan_workers", scanCmd.Flags().Lookup("workers"))
	watchCmd.Flags().Int("debounce", 5, "seconds to wait after the last change before rescanning")
	viper.BindPFlag("watch_debounce_seconds", watchCmd.Flags().Lookup("debounce"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".audiotag")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
	metrics.Register()
}

// readRecord resolves one file and returns its record. Resolve probes
// by parsing, so the returned handler is already populated; reading
// again would re-enter every parsed picture under a fresh identity.
func readRecord(path string) (*record.Record, error) {
	h, err := handlers.NewResolver().Resolve(path)
	if err != nil {
		return nil, describeFormatError(err)
	}
	return h.Record(), nil
}

// printRecord writes the record's populated fields in canonical order.
func printRecord(cmd *cobra.Command, rec *record.Record) {
	out := cmd.OutOrStdout()
	for _, k := range fields.AllKeys() {
		v, ok := rec.Get(k)
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%s: %v\n", k, v.Interface())
	}
	for p := range rec.Pictures().Visible() {
		desc, _ := p.Description()
		fmt.Fprintf(out, "Picture: %s (%d bytes) %s\n", p.Type(), len(p.Data()), desc)
	}
}

// describeFormatError surfaces the structured reason and suggestion when
// the error came out of the format layer.
func describeFormatError(err error) error {
	var fe *formats.Error
	if errors.As(err, &fe) && fe.Suggestion != "" {
		return fmt.Errorf("%s (%s)", fe.Reason, fe.Suggestion)
	}
	return err
}

// parseCategories builds a field-group mask from flag values.
func parseCategories(names []string) (fields.Category, error) {
	var mask fields.Category
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "basic":
			mask |= fields.Basic
		case "sort":
			mask |= fields.SortOrder
		case "grouping":
			mask |= fields.GroupingFields
		case "additional":
			mask |= fields.Additional
		case "replaygain":
			mask |= fields.ReplayGain
		case "all":
			mask |= fields.All
		default:
			return 0, fmt.Errorf("unknown field group %q", name)
		}
	}
	if mask == 0 {
		mask = fields.All
	}
	return mask, nil
}
