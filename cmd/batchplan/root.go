package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/batchplan"
)

var exampleUsage = strings.TrimSpace(`
  batchplan by_count --total 50 --num-batches 8
  batchplan weighted --total 100 --weights 10,20,30,40
  batchplan merge --batches 3,3,2,2,2 --merge-count 2
  batchplan run --file requests.yaml --output yaml
`)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	output     string
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "dev"
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "batchplan",
		Short:         "Compute deterministic batch plans",
		Long:          "Split an integer total into ordered, strictly positive batch sizes using one of the supported policies.",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a YAML planner config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&flags.output, "output", "o", "json", "output format (json, yaml)")

	for _, spec := range policyCommands {
		root.AddCommand(newPolicyCmd(flags, spec))
	}
	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newPoliciesCmd())

	return root
}

// newPlanner builds a Planner from the global flags, logging to the command's stderr.
func newPlanner(cmd *cobra.Command, flags *globalFlags) (*batchplan.Planner, error) {
	level, err := zerolog.ParseLevel(flags.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := batchplan.NewConsoleLogger(cmd.ErrOrStderr(), level)

	cfg := batchplan.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := batchplan.LoadConfig(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = *loaded
		logger.Info("configuration loaded", "path", flags.configPath)
	}

	return batchplan.NewPlanner(&cfg, batchplan.WithLogger(logger))
}

// writeOutput encodes v to the command's stdout in the requested format.
func writeOutput(cmd *cobra.Command, format string, v any) error {
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("unsupported --output %q (want json or yaml)", format)
	}
}
