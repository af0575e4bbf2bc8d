package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Bahjat/email-insight/internal/emailinsight"
	"github.com/Bahjat/email-insight/internal/platform/config"
	"github.com/Bahjat/email-insight/internal/platform/logger"
	"github.com/Bahjat/email-insight/internal/server"
)

// NewRootCmd builds the emailinsight command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "emailinsight",
		Short: "Extract and classify the links of an HTML email.",
		Long: `emailinsight analyzes the HTML body of an email: it extracts every
hyperlink, classifies each one as tutorial, vendor or general, measures
the visible text and flags tutorial-style content.

Run "emailinsight serve" for the HTTP API or "emailinsight analyze" to
analyze a single file offline.`,
		SilenceUsage: true,
	}

	root.AddCommand(newAnalyzeCmd(), newServeCmd())
	return root
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze an HTML email read from a file or stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			content, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			result, err := emailinsight.NewEngine().Analyze(cmd.Context(), string(content))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(result)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API.",
		Long: `serve starts the HTTP API. Settings come from the environment
(PORT, LOG_LEVEL, MAX_BODY_BYTES, SHUTDOWN_TIMEOUT, METRICS_ENABLED);
--port overrides PORT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port != "" {
				if err := os.Setenv("PORT", port); err != nil {
					return err
				}
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, log).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}
