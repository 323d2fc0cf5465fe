// Package cli holds the commands of the bootstrapper command line.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand returns the bootstrapper command. Settings are read by v in
// this order: flags, environment, configuration file, defaults.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "bootstrapper",
		Short: "Bootstraps a set of extensions",
		Long: `bootstrapper runs the lifecycle of a set of demo extensions: it configures
them from a YAML or HCL file, starts them, then stops and closes them in the
reverse order. The bootstrapping tree is logged and can be drawn as a DOT graph.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "configuration file (default is ./bootstrapper.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-format", "human", "log format: json or human")

	_ = v.BindPFlag("debug", flags.Lookup("debug"))
	_ = v.BindPFlag("log_format", flags.Lookup("log-format"))

	root.AddCommand(newRunCommand(v))

	return root
}
