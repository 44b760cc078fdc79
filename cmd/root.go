package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"projctx/pkg/combine"
	"projctx/pkg/logging"
	"projctx/pkg/version"
)

// NewRootCmd builds the projctx command tree.
func NewRootCmd() *cobra.Command {
	args := &combine.Arguments{}
	var noDetect, noHeader, debug bool

	rootCmd := &cobra.Command{
		Use:   "projctx <input_dir>",
		Short: "Combine a project's source files into one Markdown document",
		Long: `projctx walks a project directory, keeps source and text files, and
concatenates them into a single Markdown file with a header and a
language-tagged code block per file, ready to paste into an LLM.`,
		Example:      `projctx ./myproject -o context.md`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logging.Setup(debug, "projctx", version.Get().Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, positional []string) error {
			args.Directory = positional[0]
			args.DetectEncoding = !noDetect
			args.Header = !noHeader
			return runCombine(cmd, args, logging.L())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&args.Output, "output", "o", combine.DefaultOutput, "Path to the output Markdown file")
	flags.BoolVar(&noDetect, "no-detect", false, "Disable statistical encoding detection (UTF-8 and Latin-1 only)")
	flags.BoolVar(&noHeader, "no-header", false, "Omit the introductory header block")
	flags.BoolVar(&args.Tree, "tree", false, "List the included files as a tree after the header")
	flags.IntVar(&args.WarnSizeKB, "warn-kb", combine.DefaultWarnSizeKB, "Warn when the output is larger than this many KB (0 disables)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func runCombine(cmd *cobra.Command, args *combine.Arguments, logger *zap.Logger) error {
	res, err := combine.RunCombine(args, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully created context file: %s\n", res.Output)
	fmt.Fprintf(out, "Output file size: %.2f KB (%s bytes)\n", float64(res.SizeBytes)/1024, humanize.Comma(res.SizeBytes))

	if res.Skipped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d file(s) could not be read and were skipped.\n", res.Skipped)
	}
	if res.Large {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Output file is large (> %d KB). It might exceed the context limit of some LLMs.\n", args.WarnSizeKB)
	}
	return nil
}

// Execute runs the root command with fang's help and error rendering.
func Execute(ctx context.Context) error {
	v := version.Get()
	return fang.Execute(
		ctx,
		NewRootCmd(),
		fang.WithVersion(v.Version),
		fang.WithCommit(v.GitCommit),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}
