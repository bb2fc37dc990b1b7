package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-envar/envar"
	"github.com/MKhiriev/go-envar/internal/logger"
	"github.com/MKhiriev/go-envar/internal/manifest"
	"github.com/MKhiriev/go-envar/internal/output"
)

func newGetCmd(a *app) *cobra.Command {
	var (
		entry      manifest.Entry
		defaultVal string
		allowed    []string
	)

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Resolve a single variable",
		Long: `Resolve a single variable and print its value. Without flags the raw
value is printed as is. Exits with an error when the variable ends up
without a value.

Examples:
  envar get HOME
  envar get PORT --type int --default 8080
  envar get MODE --type enum --allowed development,production --required`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context()).GetChildLogger("get")

			entry.Name = args[0]
			entry.Allowed = allowed
			if cmd.Flags().Changed("default") {
				entry.Default = defaultVal
			}

			m := &manifest.Manifest{Variables: []manifest.Entry{entry}}
			if err := m.Validate(); err != nil {
				return err
			}

			resolved, err := m.Resolve(envar.NewResolver(envar.WithLogger(log.Logger)))
			if err != nil {
				return err
			}

			v, ok := resolved.Lookup(entry.Name)
			if !ok {
				return fmt.Errorf("%s is not set", entry.Name)
			}

			text, err := output.FormatValue(v)
			if err != nil {
				return fmt.Errorf("error formatting %s: %w", entry.Name, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVarP(&entry.Type, "type", "t", "", "Value type (raw, string, int, float, bool, json, yaml, enum, duration)")
	cmd.Flags().StringVarP(&defaultVal, "default", "d", "", "Default used when the parsed value is absent")
	cmd.Flags().BoolVarP(&entry.Required, "required", "r", false, "Fail when no value remains")
	cmd.Flags().StringSliceVar(&allowed, "allowed", nil, "Allowed values of an enum")

	return cmd
}
