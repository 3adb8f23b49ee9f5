package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scalarmap/external"
	"scalarmap/internal/check"
	"scalarmap/internal/diagnostic"
	"scalarmap/options"
	"scalarmap/scalar"
)

var errCheckFailed = errors.New("check failed")

func newDatatypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "datatype FILE...",
		Short: "Print the datatype tag of every value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.load(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, doc := range docs {
				for i := range doc.Values {
					e := &doc.Values[i]
					fmt.Fprintf(out, "%s\t%s\n", e.Name, scalar.Datatype(&e.Value))
				}
			}

			return nil
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		exactIntegers bool
		rawTimestamps bool
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "convert FILE...",
		Short: "Print the host value every scalar converts to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.load(cmd.Context(), args)
			if err != nil {
				return err
			}

			mapper := external.NewMapper(a.categories(exactIntegers, rawTimestamps), external.WithLogger(a.logger))

			// Nothing is printed unless every value converts.
			var buf bytes.Buffer
			for _, doc := range docs {
				for i := range doc.Values {
					e := &doc.Values[i]
					fv := mapper.ToFullValue(&e.Value)

					if !asJSON {
						fmt.Fprintf(&buf, "%s\t%s\t%v\n", e.Name, fv.Datatype, fv.Value)
						continue
					}

					data, err := json.Marshal(map[string]any{"name": e.Name, "value": fv})
					if err != nil {
						return fmt.Errorf("%s: %w", e.Name, err)
					}

					buf.Write(data)
					buf.WriteByte('\n')
				}
			}

			_, err = cmd.OutOrStdout().Write(buf.Bytes())

			return err
		},
	}

	cmd.Flags().BoolVar(&exactIntegers, "exact-integers", false, "keep int, uint and counter as exact integers")
	cmd.Flags().BoolVar(&rawTimestamps, "raw-timestamps", false, "emit timestamps as milliseconds since the epoch")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per value")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var exactIntegers bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report values that lose information when converted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var diags diagnostic.Diagnostics

			categories := a.categories(exactIntegers, false)
			docs, errs := a.loadEach(cmd.Context(), args)

			for i, path := range args {
				if errs[i] != nil {
					var failed diagnostic.Diagnostics
					failed.AddError(check.CodeLoadFailed, errs[i].Error(), "", path)
					diags.Merge(failed)
					continue
				}

				entries := make([]check.Entry, len(docs[i].Values))
				for j := range docs[i].Values {
					e := &docs[i].Values[j]
					entries[j] = check.Entry{Path: path + ":" + e.Name, Value: &e.Value}
				}

				diags.Merge(check.Values(categories, entries...))
			}

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			a.logger.Info("Check finished",
				zap.Int("errors", len(diags.Errors)),
				zap.Int("warnings", len(diags.Warnings)),
				zap.Int("infos", len(diags.Infos)))

			if err := diags.Error(); err != nil {
				return fmt.Errorf("%w: %w", errCheckFailed, err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&exactIntegers, "exact-integers", false, "check against exact integer conversion")

	return cmd
}

// categories applies command line overrides on top of the configured mapping.
func (a *app) categories(exactIntegers, rawTimestamps bool) options.CategoryEnum {
	mapping := a.cfg.Mapping
	mapping.ExactIntegers = mapping.ExactIntegers || exactIntegers
	mapping.RawTimestamps = mapping.RawTimestamps || rawTimestamps

	return mapping.Categories()
}
