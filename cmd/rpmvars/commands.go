// Package rpmvars wires the CLI: flag parsing, command dispatch and the
// generate pipeline (validate name, query packages, merge, assemble,
// emit). Process exit codes are mapped from error codes in exit.go.
package rpmvars

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/rpmvars/internal/version"
	"github.com/arthur-debert/rpmvars/pkg/assemble"
	"github.com/arthur-debert/rpmvars/pkg/config"
	"github.com/arthur-debert/rpmvars/pkg/emit"
	"github.com/arthur-debert/rpmvars/pkg/logging"
	"github.com/arthur-debert/rpmvars/pkg/osrelease"
	"github.com/arthur-debert/rpmvars/pkg/rpmquery"
	"github.com/arthur-debert/rpmvars/pkg/validate"
)

// distroChoices is the accepted set for -d/--distro. "auto" resolves to
// one of the others via /etc/os-release.
var distroChoices = []string{"auto", "debian", "ubuntu", "rhel", "fedora"}

type generateOptions struct {
	distro string
	output string
	input  string
	plain  bool
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		opts      generateOptions
	)

	rootCmd := &cobra.Command{
		Use:     "rpmvars [flags] PACKAGE",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVarP(&opts.distro, "distro", "d", "",
		fmt.Sprintf("%s (one of: %v)", MsgFlagDistro, distroChoices))
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().StringVar(&opts.input, "input", "", MsgFlagInput)
	rootCmd.Flags().BoolVar(&opts.plain, "plain", false, MsgFlagPlain)
	// Registered by hand so the shorthand is -V; cobra's auto version
	// flag would get no shorthand because -v belongs to --verbose.
	rootCmd.Flags().BoolP("version", "V", false, MsgFlagVersion)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))
	rootCmd.AddCommand(newTopicsCmd())

	return rootCmd
}

// runGenerate is the main pipeline: validate the name, query the package
// dumps, merge and deduplicate files, assemble the document, write it.
func runGenerate(cmd *cobra.Command, args []string, opts generateOptions) error {
	logger := logging.GetLogger("cmd.generate")

	if len(args) == 0 {
		// No package given: print a usage hint, succeed. Matches the
		// historical CLI contract.
		fmt.Fprint(cmd.OutOrStdout(), MsgUsageHint)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	distro := resolveDistro(opts.distro, cfg)
	logger.Debug().Str("distro", distro).Msg("validation policy selected")

	name, err := validate.PackageName(args[0], distro)
	if err != nil {
		return err
	}

	var querier rpmquery.Querier = rpmquery.RPMQuerier{}
	if opts.input != "" {
		querier = rpmquery.FileQuerier{Path: opts.input}
	}

	pkgs, err := querier.InstalledPackages(cmd.Context(), name)
	if err != nil {
		return err
	}

	files := assemble.MergeFiles(pkgs)
	doc := assemble.Assemble(files)

	logger.Info().
		Str("package", name).
		Int("instances", len(pkgs)).
		Int("files", len(files)).
		Msg("assembled document")

	outPath := opts.output
	if outPath == "" {
		template := cfg.Output.Template
		if template == "" {
			template = "files_%s.yml"
		}
		outPath = fmt.Sprintf(template, name)
	}

	var encoder emit.Encoder = emit.YAMLEncoder{}
	if opts.plain || cfg.Emit.Encoder == "plain" {
		encoder = emit.FallbackEncoder{}
	}

	if err := emit.WriteFile(outPath, doc, encoder); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), MsgWroteFormat, outPath)
	return nil
}

// resolveDistro picks the validation policy keyword: the flag wins, then
// the configured default, and "auto" goes through os-release detection.
func resolveDistro(flagValue string, cfg *config.Config) string {
	selected := flagValue
	if selected == "" {
		selected = cfg.Query.Distro
	}
	if selected != "" && selected != "auto" {
		return selected
	}

	fallback := cfg.Query.FallbackDistro
	if fallback == "" {
		fallback = "rhel"
	}
	return osrelease.DetectDistro(distroChoices[1:], fallback, "")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rpmvars version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
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

func newManCmd(root *cobra.Command) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "RPMVARS",
				Section: "1",
			}
			return doc.GenManTree(root, header, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "/tmp", "Directory to write man pages to")
	return cmd
}
