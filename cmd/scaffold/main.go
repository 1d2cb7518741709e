package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/adhocteam/scaffold/internal/command"
	"github.com/adhocteam/scaffold/internal/config"
	"github.com/adhocteam/scaffold/internal/version"
)

var (
	configFile string
	logLevel   string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:           "scaffold",
	Short:         "Lex, parse and evaluate arithmetic with the scaffold drivers",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		level, err := cfg.Level()
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

var lexCmd = &cobra.Command{
	Use:   "lex FILE",
	Short: "Print the located tokens of FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := cfg.Format
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}
		return command.Lex(cmd.OutOrStdout(), args[0], format)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Pretty-print the syntax tree of FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fold, _ := cmd.Flags().GetBool("fold")
		asJSON, _ := cmd.Flags().GetBool("json")
		return command.PrettyPrintAST(cmd.OutOrStdout(), args[0], fold, asJSON)
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [FILE]",
	Short: "Evaluate FILE, or the expression given with -e",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout := cfg.Timeout
		if cmd.Flags().Changed("timeout") {
			timeout, _ = cmd.Flags().GetDuration("timeout")
		}
		expr, _ := cmd.Flags().GetString("expr")
		switch {
		case expr != "" && len(args) == 0:
			return command.Eval(cmd.Context(), cmd.OutOrStdout(), expr, timeout)
		case expr == "" && len(args) == 1:
			return command.EvalFile(cmd.Context(), cmd.OutOrStdout(), args[0], timeout)
		}
		return fmt.Errorf("eval needs either a file or -e, not both")
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [DIR]",
	Short: "Parse and evaluate every source file below DIR",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyJobs(cmd); err != nil {
			return err
		}
		_, err := command.Check(cmd.Context(), rootDir(args), cfg)
		return err
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [DIR]",
	Short: "Check DIR, then re-check files as they change",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyJobs(cmd); err != nil {
			return err
		}
		return command.Watch(cmd.Context(), rootDir(args), cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scaffold %s\n", version.Version())
	},
}

func rootDir(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "."
}

func applyJobs(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("jobs") {
		return nil
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
	}
	cfg.Jobs = jobs
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config `file` (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	lexCmd.Flags().String("format", "text", "output format: text, json or yaml")

	parseCmd.Flags().Bool("fold", false, "fold constant operations before printing")
	parseCmd.Flags().Bool("json", false, "print the syntax tree as JSON")

	evalCmd.Flags().StringP("expr", "e", "", "evaluate `expression` instead of a file")
	evalCmd.Flags().Duration("timeout", 0, "abandon evaluation after this long")

	checkCmd.Flags().Int("jobs", 0, "number of files to check concurrently")
	watchCmd.Flags().Int("jobs", 0, "number of files to check concurrently")

	rootCmd.AddCommand(lexCmd, parseCmd, evalCmd, checkCmd, watchCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
