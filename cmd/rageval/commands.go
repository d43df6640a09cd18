package main

import (
	"github.com/spf13/cobra"
)

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rageval",
		Short: "Generate test questions from documents and grade a RAG system's answers",
		Long: `rageval reads PDF, DOCX and TXT documents, asks an LLM to write
question and answer pairs grounded in them, sends each question to the
RAG system under test and grades the answers.

Results go to a Google Sheet, a local xlsx file and, when REDIS_ADDR is
set, a Redis stream.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		buildRunCmd(),
		buildServeCmd(),
		buildMCPCmd(),
	)
	return root
}

func buildRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch evaluation over a directory of documents",
		Long: `Run a batch evaluation. Any of --dir, --mode, --files or --count that
is not given is asked for interactively.

Modes: 1 or "comparison" generates questions across all selected files,
2 or "direct" tests each file on its own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			opts.dirSet = flags.Changed("dir")
			opts.modeSet = flags.Changed("mode")
			opts.filesSet = flags.Changed("files")
			opts.countSet = flags.Changed("count")
			return runEvaluation(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Directory containing the documents (default: DEFAULT_INPUT_DIR)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Testing mode: 1/comparison or 2/direct")
	cmd.Flags().StringVarP(&opts.files, "files", "f", "", "Comma-separated file numbers, empty or \"all\" for every file")
	cmd.Flags().IntVarP(&opts.count, "count", "n", defaultCount, "Questions to generate per file")
	cmd.Flags().BoolVar(&opts.verifyStorage, "verify-storage", false, "Check that every derived s3:// URI exists")
	return cmd
}

func buildServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve question generation and grading over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (default: RAG_EVAL_API_PORT)")
	return cmd
}

func buildMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve question generation and grading as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCP(cmd.Context())
		},
	}
}
