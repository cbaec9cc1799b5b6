package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-go/tagkit/internal/config"
	"github.com/vango-go/tagkit/pkg/dom/htmldoc"
)

func buildCmd(e *env) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build every element listed in a YAML file",
		Long: `Build every element listed in a YAML build file and print each one.

Example file:

  elements:
    - tag: label
      attrs:
        for: email
        class: [field, required]
    - tag: ul
      children:
        - tag: li
          attrs: {content: "<b>one</b>"}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bf, err := config.LoadBuild(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, es := range bf.Elements {
				el, err := e.buildSpec(es)
				if err != nil {
					return fmt.Errorf("elements[%d] (%s): %w", i, es.Tag, err)
				}
				if i > 0 && e.cfg.Pretty {
					fmt.Fprintln(out)
				}
				if err := printElement(out, el, ""); err != nil {
					return err
				}
			}
			return e.writeMetrics(out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Build file (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// buildSpec constructs an element and its children depth-first.
func (e *env) buildSpec(es config.ElementSpec) (*htmldoc.Element, error) {
	node, err := e.factory.MakeNamed(es.Tag, es.Attrs...)
	if err != nil {
		return nil, err
	}
	el := node.(*htmldoc.Element)

	for i, child := range es.Children {
		c, err := e.buildSpec(child)
		if err != nil {
			return nil, fmt.Errorf("children[%d] (%s): %w", i, child.Tag, err)
		}
		el.AppendChild(c)
	}
	return el, nil
}
