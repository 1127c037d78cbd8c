package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tair/inventory-tracker/internal/product"
	"github.com/tair/inventory-tracker/internal/product/usecase/command"
	"github.com/tair/inventory-tracker/internal/product/usecase/query"
	"github.com/tair/inventory-tracker/kafka"
)

// inventory import <file>
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import products from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := boot(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeDB(db)

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		// Import never changes stock of existing rows, so no events are published
		commands, err := product.InitializeCommandHandlers(db, kafka.NopPublisher{})
		if err != nil {
			return err
		}

		summary, err := commands.Import.Handle(cmd.Context(), command.ImportProductsCommand{Source: f})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "added: %d\nskipped: %d\nduplicates: %d\n", summary.Added, summary.Skipped, len(summary.Duplicates))
		for _, d := range summary.Duplicates {
			fmt.Fprintf(out, "  duplicate %q (existing id %d)\n", d.Name, d.ExistingID)
		}
		for _, s := range summary.SkippedRows {
			fmt.Fprintf(out, "  row %d skipped: %s\n", s.Row, s.Reason)
		}
		return nil
	},
}

var exportOutput string

// inventory export [-o file]
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all products as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := boot(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeDB(db)

		queries, err := product.InitializeQueryHandlers(db)
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		n, err := queries.Export.Handle(cmd.Context(), query.ExportProductsQuery{}, out)
		if err != nil {
			return err
		}
		if exportOutput != "" {
			cmd.PrintErrf("exported %d products to %s\n", n, exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write CSV to file instead of stdout")
}
