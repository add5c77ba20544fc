package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/hitfilter/internal/version"
)

const defaultWorldPath = "examples/world.yaml"

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "hitfilter",
		Short:        "Evaluate keyword filters and resolve hit nodes against a world fixture",
		SilenceUsage: true,
	}
	root.Version = version.Version
	root.SetVersionTemplate("{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.env, "env", "", "environment name; selects config/<env>.yaml (default: $ENV or local)")
	flags.StringVar(&a.configPath, "config", "", "explicit config file path (overrides --env lookup)")
	flags.StringVar(&a.worldPath, "world", defaultWorldPath, "world fixture file")

	root.AddCommand(evalCmd(a))
	root.AddCommand(hitCmd(a))
	root.AddCommand(splitCmd())
	root.AddCommand(versionCmd())
	return root
}
