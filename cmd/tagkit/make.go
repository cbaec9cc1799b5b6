package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
	"github.com/vango-go/tagkit/internal/errors"
	"github.com/vango-go/tagkit/pkg/dom/htmldoc"
	"github.com/vango-go/tagkit/pkg/resolve"
)

type makeOptions struct {
	id      string
	classes []string
	content string
	forID   string
	sets    []string
	sel     string
}

func makeCmd(e *env) *cobra.Command {
	var opts makeOptions

	cmd := &cobra.Command{
		Use:   "make <tag>",
		Short: "Build one element and print its HTML",
		Long: `Build one element and print its outer HTML.

Entries are applied in this order: --id, --class, --content, --for, then
each --set in the order given. A --set key of id, class, content or for is
treated like the matching flag.

Examples:
  tagkit make label --for email --content 'Email'
  tagkit make input --id q --set type=search --set placeholder=Search
  tagkit make div --content '<p>a</p><p>b</p>' --select p`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := opts.entries(cmd)
			if err != nil {
				return err
			}

			el, err := e.factory.MakeNamed(args[0], entries...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printElement(out, el.(*htmldoc.Element), opts.sel); err != nil {
				return err
			}
			return e.writeMetrics(out)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "Element identifier")
	cmd.Flags().StringArrayVar(&opts.classes, "class", nil, "Class tokens (repeatable, whitespace-separated)")
	cmd.Flags().StringVar(&opts.content, "content", "", "Inner markup (not escaped)")
	cmd.Flags().StringVar(&opts.forID, "for", "", "Value of the for attribute")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Property as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.sel, "select", "", "Print only descendants matching this CSS selector")

	return cmd
}

func (o *makeOptions) entries(cmd *cobra.Command) (resolve.Entries, error) {
	var es resolve.Entries
	flags := cmd.Flags()

	if flags.Changed("id") {
		es = es.Set("id", o.id)
	}
	for _, c := range o.classes {
		es = es.Set("class", c)
	}
	if flags.Changed("content") {
		es = es.Set("content", o.content)
	}
	if flags.Changed("for") {
		es = es.Set("for", o.forID)
	}
	for _, kv := range o.sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, errors.New(errors.CodeUsage).
				WithDetail(fmt.Sprintf("--set %q is not key=value", kv)).
				WithSuggestion("Write each property as key=value, for example --set type=search.")
		}
		es = es.Set(key, value)
	}
	return es, nil
}

// printElement writes el's outer HTML, or the outer HTML of each descendant
// matching sel, one per line.
func printElement(w io.Writer, el *htmldoc.Element, sel string) error {
	if sel == "" {
		html, err := el.OuterHTML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, html)
		return err
	}

	var firstErr error
	el.Find(sel).Each(func(_ int, s *goquery.Selection) {
		if firstErr != nil {
			return
		}
		html, err := goquery.OuterHtml(s)
		if err != nil {
			firstErr = err
			return
		}
		fmt.Fprintln(w, html)
	})
	return firstErr
}
