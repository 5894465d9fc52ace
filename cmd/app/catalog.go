package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TemirB/smm-orders/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List orderable services",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(file)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tSERVICE ID\tPANEL\tQUANTITY")
			for _, p := range cat.CommentPanels() {
				spec, _ := cat.CommentService(p)
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", spec.Key, spec.DisplayName, spec.ServiceID, spec.Panel.Label(), "per comment")
			}
			for _, spec := range cat.Services() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\n", spec.Key, spec.DisplayName, spec.ServiceID, spec.Panel.Label(), spec.Quantity)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Catalog YAML file (default: built-in catalog)")
	return cmd
}
