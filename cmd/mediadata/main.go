package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/quantmind-br/mediadata-go/internal/app"
	"github.com/quantmind-br/mediadata-go/internal/config"
	"github.com/quantmind-br/mediadata-go/internal/tui"
	"github.com/quantmind-br/mediadata-go/internal/utils"
	"github.com/quantmind-br/mediadata-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile    string
	verbose    bool
	dryRun     bool
	noProgress bool
	log        = utils.NewDefaultLogger()

	// Dependencies for testing
	stderr     io.Writer = os.Stderr
	isTerminal           = func() bool { return isatty.IsTerminal(os.Stderr.Fd()) }
	runEditor            = tui.Run
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mediadata",
	Short: "Generate the media manifest for the web front end",
	Long: `mediadata walks the images directory, keeps the image files it finds,
tags each one as product, community, site or other from its path, and writes
the result to media-data.js as a script the site can load directly.

A missing images directory is reported and leaves media-data.js untouched.`,
	Version:       version.Short(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ~/.mediadata/config.yaml)")
	rootCmd.PersistentFlags().StringP("root", "r", config.DefaultRoot, "Directory to scan")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutputFile, "Output file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Scan and render without writing the output file")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Disable the scan spinner")

	bindFlags()

	// Add subcommands
	configCmd.AddCommand(configEditCmd)
	configEditCmd.Flags().Bool("accessible", false, "Use accessible prompts instead of the full-screen editor")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindFlags binds flags to viper keys
func bindFlags() {
	_ = viper.BindPFlag("scan.root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("output.file", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(utils.ExpandPath(cfgFile))
	}
}

// setup loads the configuration and initializes the logger
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log = utils.NewLogger(utils.LoggerOptions{
		Level:  utils.EffectiveLevel(cfg.Logging.Level, verbose),
		Format: cfg.Logging.Format,
		Output: stderr,
	})
	return cfg, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func newOrchestrator(cfg *config.Config, dryRun bool) (*app.Orchestrator, error) {
	opts := app.OrchestratorOptions{
		Config:  cfg,
		Logger:  log,
		DryRun:  dryRun,
		Verbose: verbose,
	}
	if !noProgress && isTerminal() {
		opts.Progress = stderr
	}

	orchestrator, err := app.NewOrchestrator(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	return orchestrator, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	orchestrator, err := newOrchestrator(cfg, dryRun)
	if err != nil {
		return err
	}

	_, err = orchestrator.Run(ctx)
	return err
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the output file is up to date",
	Long: `Scans the images directory and compares the rendered manifest with the
file on disk. Exits with status 1 when the file is missing or out of date.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		orchestrator, err := newOrchestrator(cfg, false)
		if err != nil {
			return err
		}

		_, err = orchestrator.Check(ctx)
		return err
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "# loaded from %s\n", used)
		}

		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration interactively",
	Long: `Opens a terminal editor for the configuration and saves it as YAML to the
file given with --config, the config file currently loaded, or
~/.mediadata/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := viper.ConfigFileUsed()
		if path == "" {
			path = config.ConfigFilePath()
		}
		accessible, _ := cmd.Flags().GetBool("accessible")

		return runEditor(tui.Options{
			Config:     cfg,
			SavePath:   path,
			SaveFunc:   func(c *config.Config) error { return config.Save(c, path) },
			Accessible: accessible,
		})
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment",
	Long:  "Verifies that the scan directory exists, the output location is writable and the configuration loads.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Checking environment...")
		allPassed := true

		// Check 1: Config file
		fmt.Fprint(out, "  Config file: ")
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(out, "FAILED (%v)\n", err)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
			return nil
		}
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "OK (%s)\n", used)
		} else {
			fmt.Fprintln(out, "OK (defaults)")
		}

		// Check 2: Scan directory
		fmt.Fprint(out, "  Scan directory: ")
		exists, err := utils.DirExists(cfg.Scan.Root)
		switch {
		case err != nil:
			fmt.Fprintf(out, "FAILED (%v)\n", err)
			allPassed = false
		case !exists:
			fmt.Fprintf(out, "WARN (%s not found, nothing will be written)\n", cfg.Scan.Root)
		case !utils.IsDir(cfg.Scan.Root):
			fmt.Fprintf(out, "WARN (%s is not a directory)\n", cfg.Scan.Root)
		default:
			fmt.Fprintf(out, "OK (%s)\n", cfg.Scan.Root)
		}

		// Check 3: Write permissions for the output file
		fmt.Fprint(out, "  Write permissions: ")
		outDir := filepath.Dir(cfg.Output.File)
		if checkWritePermissions(outDir) {
			fmt.Fprintf(out, "OK (%s)\n", outDir)
		} else {
			fmt.Fprintf(out, "FAILED (%s)\n", outDir)
			allPassed = false
		}

		fmt.Fprintln(out)
		if allPassed {
			fmt.Fprintln(out, "All critical checks passed!")
		} else {
			fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkWritePermissions checks if the output file can be created in dir.
// A directory that does not exist yet counts as writable when its nearest
// existing ancestor is.
func checkWritePermissions(dir string) bool {
	for {
		if utils.IsDir(dir) {
			return utils.CanWriteDir(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
