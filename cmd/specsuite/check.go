package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specsuite/core/pkg/domain"
	"github.com/specsuite/core/pkg/report"
	"github.com/specsuite/core/pkg/spectest"
)

var checkActual string

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a single spec test file and print its metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor := spectest.NewExtractor()

		meta, err := extractor.ExtractFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		// The actual type comes from an external test run; when supplied,
		// check it against the declared type.
		if checkActual != "" {
			actual, ok := domain.ParseTestType(checkActual)
			if !ok {
				return fmt.Errorf("unknown test type %q (want pos or neg)", checkActual)
			}
			if err := spectest.ValidateTestType(meta.Type, actual); err != nil {
				return err
			}
		}

		report.PrintTestInfo(cmd.OutOrStdout(), meta)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkActual, "actual", "", "actual test type from a test run (pos|neg)")
}
