package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs the azrest CLI until ctx is canceled.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "azrest",
		Short: "Talk to Azure App Configuration and management locks",
		Long: "azrest reads and writes App Configuration key-values and manages " +
			"Azure Resource Manager locks. Settings come from a YAML config file, " +
			"AZREST_* environment variables and flags.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateOutput(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file path (YAML)")
	flags.StringP("output", "o", outputJSON, "Output format (json|yaml)")
	flags.BoolP("verbose", "v", false, "Log requests at debug level to stderr")
	flags.String("endpoint", "", "Override the service endpoint of the command")

	for _, sub := range []*cobra.Command{
		newKVCmd(),
		newKeysCmd(),
		newLabelsCmd(),
		newRevisionsCmd(),
		newLocksCmd(),
	} {
		cmd.AddCommand(sub)
	}

	setFlagErrorFunc(cmd)
	return cmd
}

// setFlagErrorFunc converts flag errors (like unknown flags) of cmd and its
// children into usage errors that also show the command's help text.
func setFlagErrorFunc(cmd *cobra.Command) {
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	})
	for _, sub := range cmd.Commands() {
		setFlagErrorFunc(sub)
	}
}

// exactArgs is cobra.ExactArgs returning a usage error.
func exactArgs(n int, names string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return newUsageError(fmt.Sprintf("%s: expected %s\n\n%s", cmd.CommandPath(), names, cmd.UsageString()))
		}
		return nil
	}
}
