package mimeglob

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/mimeglob/internal/version"
	"github.com/arthur-debert/mimeglob/pkg/config"
	"github.com/arthur-debert/mimeglob/pkg/database"
	"github.com/arthur-debert/mimeglob/pkg/errors"
	"github.com/arthur-debert/mimeglob/pkg/glob"
	"github.com/arthur-debert/mimeglob/pkg/logging"
	"github.com/arthur-debert/mimeglob/pkg/ui"
	"github.com/arthur-debert/mimeglob/pkg/ui/display"
	"github.com/arthur-debert/mimeglob/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags
type rootOptions struct {
	verbosity  int
	configFile string
	format     string
	noSystem   bool
	globFiles  []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "mimeglob",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.Setup(logging.Options{Verbosity: opts.verbosity, Console: cmd.ErrOrStderr()})
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&opts.noSystem, "no-system", false, MsgFlagNoSystem)
	rootCmd.PersistentFlags().StringArrayVar(&opts.globFiles, "globs", nil, MsgFlagGlobs)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "Misc:",
	})

	rootCmd.SetHelpTemplate(MsgHelpTemplate)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))

	rootCmd.AddCommand(newMatchCmd(opts))
	rootCmd.AddCommand(newClassifyCmd(opts))
	rootCmd.AddCommand(newProbeCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig resolves the configuration with the global flags applied last
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = o.format
	}
	if o.noSystem {
		overrides["database.use_system"] = false
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
	}

	cfg.Database.Files = append(cfg.Database.Files, o.globFiles...)
	return cfg, nil
}

// loadRegistry builds the registry described by the configuration
func (o *rootOptions) loadRegistry(cmd *cobra.Command) (*config.Config, *glob.Registry, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	reg, err := database.Build(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrBuildDatabase)
	}
	return cfg, reg, nil
}

// newRenderer picks the renderer for the configured output format
func newRenderer(cfg *config.Config, w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	if cfg.Output.Styles != "" {
		if err := styles.LoadStylesFile(cfg.Output.Styles); err != nil {
			return nil, err
		}
	}
	return ui.NewRenderer(format, w)
}

func newMatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "match FILE...",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		Example: MsgMatchExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, err := opts.loadRegistry(cmd)
			if err != nil {
				return err
			}

			report := &display.MatchReport{Files: make([]display.FileMatch, 0, len(args))}
			for _, path := range args {
				name := filepath.Base(path)
				result := reg.MatchingGlobs(name)
				report.Files = append(report.Files, display.NewFileMatch(path, name, result))

				log.Debug().
					Str("path", path).
					Str("winner", result.Winner()).
					Int("matches", len(result.AllMatches())).
					Msg("Resolved file name")
			}

			renderer, err := newRenderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(report)
		},
	}
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var caseSensitive bool

	cmd := &cobra.Command{
		Use:     "classify PATTERN...",
		Short:   MsgClassifyShort,
		Long:    MsgClassifyLong,
		Example: MsgClassifyExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			report := &display.ClassifyReport{Patterns: make([]display.PatternInfo, 0, len(args))}
			for _, pattern := range args {
				p, err := glob.NewPattern(glob.Glob{
					Pattern:       pattern,
					Weight:        glob.DefaultWeight,
					CaseSensitive: caseSensitive,
				})
				if err != nil {
					return err
				}
				report.Patterns = append(report.Patterns, display.NewPatternInfo(p))
			}

			renderer, err := newRenderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(report)
		},
	}

	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, MsgFlagCaseSensitive)
	return cmd
}

func newProbeCmd(opts *rootOptions) *cobra.Command {
	var caseSensitive bool

	cmd := &cobra.Command{
		Use:     "probe PATTERN FILENAME",
		Short:   MsgProbeShort,
		Long:    MsgProbeLong,
		Example: MsgProbeExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			pattern, filename := args[0], args[1]
			var matched bool
			if caseSensitive {
				p, err := glob.NewPattern(glob.Glob{
					Pattern:       pattern,
					Weight:        glob.DefaultWeight,
					CaseSensitive: true,
				})
				if err != nil {
					return err
				}
				matched = p.Match(filename)
			} else {
				matched = glob.MatchFileName(pattern, filename)
			}

			renderer, err := newRenderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := renderer.RenderResult(&display.ProbeReport{
				Pattern:  pattern,
				Filename: filename,
				Matched:  matched,
			}); err != nil {
				return err
			}

			if !matched {
				return errors.Newf(errors.ErrNoMatch, MsgErrNoMatch, filename, pattern)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, MsgFlagCaseSensitive)
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, err := opts.loadRegistry(cmd)
			if err != nil {
				return err
			}

			// -o output is rendered in full before the file is touched
			var buf bytes.Buffer
			w := cmd.OutOrStdout()
			if output != "" {
				w = &buf
			}

			renderer, err := newRenderer(cfg, w)
			if err != nil {
				return err
			}
			if err := renderer.RenderResult(&display.GlobListing{Globs: reg.Globs()}); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write globs")
			}
			if output != "" {
				if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
					return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", output).
						WithDetail("path", output)
				}
			}

			log.Info().
				Int("globs", reg.Len()).
				Str("output", output).
				Msg("Exported globs")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
