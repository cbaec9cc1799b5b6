package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-go/tagkit/pkg/tag"
)

func tagsCmd() *cobra.Command {
	var voidOnly bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List supported element names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, k := range tag.All() {
				if voidOnly && !k.IsVoid() {
					continue
				}
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&voidOnly, "void", false, "List only void elements (no children)")

	return cmd
}
