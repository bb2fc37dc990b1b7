package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-envar/envar"
	"github.com/MKhiriev/go-envar/internal/logger"
	"github.com/MKhiriev/go-envar/internal/manifest"
	"github.com/MKhiriev/go-envar/internal/output"
)

var errNoManifest = errors.New("no manifest given: use --manifest or ENVAR_MANIFEST_PATH")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve every variable of a manifest",
		Long: `Resolve every variable declared in the manifest against the process
environment and print the result. Fails on the first required variable
without a value or the first value rejected by its parser.

Examples:
  envar check -m vars.yaml
  ENVAR_MANIFEST_PATH=vars.json envar check -o dotenv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context()).GetChildLogger("check")

			if a.cfg.Manifest.Path == "" {
				return errNoManifest
			}

			m, err := manifest.Load(a.cfg.Manifest.Path)
			if err != nil {
				return err
			}
			log.Debug().
				Str("manifest", a.cfg.Manifest.Path).
				Strs("variables", m.Names()).
				Msg("manifest loaded")

			resolved, err := m.Resolve(envar.NewResolver(envar.WithLogger(log.Logger)))
			if err != nil {
				log.Error().Err(err).Msg("environment check failed")
				return err
			}

			if err := output.Write(cmd.OutOrStdout(), resolved, a.cfg.Output.Format); err != nil {
				return fmt.Errorf("error writing output: %w", err)
			}
			return nil
		},
	}
}
