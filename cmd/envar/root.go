package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-envar/internal/config"
	"github.com/MKhiriev/go-envar/internal/logger"
)

// app carries state shared by subcommands once the root has loaded its
// configuration.
type app struct {
	flags *config.StructuredConfig
	cfg   *config.StructuredConfig
	log   *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "envar",
		Short: "Resolve and validate typed environment variables",
		Long: `envar resolves environment variables against a manifest of typed
declarations (parser, default, required flag) and prints the resolved
configuration, or fails on the first missing or malformed variable.

Settings are read from ENVAR_* variables, flags, and an optional JSON file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetStructuredConfig(a.flags)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.log = logger.NewLogger("envar", cfg.Log.Level)
			a.log.Debug().Any("config", cfg).Msg("received configs")
			cmd.SetContext(a.log.WithContext(cmd.Context()))
			return nil
		},
	}

	a.flags = config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
