// Command emitdemo renders a small sample inventory through every feature
// of the emit package: titles, labeled fields, hierarchy, and the HTML
// annotation flags. Pick a style and compare the outputs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/emit"
)

type item struct {
	title   string
	sold    int
	inStock int
	onOrder int
	skuBase string
	skuNum  int
}

var items = []item{
	{"gum", 1412, 54, 10, "GRO", 415},
	{"rope", 85, 4, 2, "HRD", 212},
	{"ladder", 0, 2, 1, "HRD", 517},
	{"bolt", 4123, 144, 42, "HRD", 632},
	{"water", 17, 14, 2, "GRO", 2331},
}

var infoTable = []emit.InfoEntry{
	{Name: "in-stock", Type: "number", Help: "Number of items in stock"},
	{Name: "name", Type: "string", Help: "Name of the item"},
	{Name: "on-order", Type: "number", Help: "Number of items on order"},
	{Name: "sku", Type: "string", Help: "Stock Keeping Unit"},
	{Name: "sold", Type: "number", Help: "Number of items sold"},
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		styleName string
		pretty    bool
		warn      bool
		xpath     bool
		info      bool
	)
	cmd := &cobra.Command{
		Use:           "emitdemo",
		Short:         "Render a sample inventory as text, XML, JSON, or HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := emit.ParseStyle(styleName)
			if err != nil {
				return err
			}
			var flags emit.Flag
			if pretty {
				flags |= emit.Pretty
			}
			if warn {
				flags |= emit.Warn
			}
			if xpath {
				flags |= emit.XPath
			}
			if info {
				flags |= emit.Info
			}
			return run(cmd.OutOrStdout(), style, flags)
		},
	}
	cmd.Flags().StringVarP(&styleName, "style", "s", "text", "output style (text, xml, json, html)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "pretty-print structured output")
	cmd.Flags().BoolVar(&warn, "warn", false, "report hierarchy misuse on stderr")
	cmd.Flags().BoolVar(&xpath, "xpath", false, "annotate HTML fields with data-xpath")
	cmd.Flags().BoolVar(&info, "info", false, "annotate HTML fields with data-type and data-help")
	return cmd
}

func run(w io.Writer, style emit.Style, flags emit.Flag) error {
	h := emit.NewWriter(w, style, flags)
	defer h.Close()
	h.SetInfo(infoTable)

	h.OpenContainer("top")

	// Tabular section: one emit per instance, titles up front.
	h.OpenContainer("data")
	h.OpenList("item")
	h.Emit("{T:Item/%-10s}{T:Total Sold/%12s}{T:In Stock/%12s}{T:On Order/%12s}{T:SKU/%5s}\n")
	for _, it := range items {
		h.OpenInstance("item")
		h.Emit("{:item/%-10s/%s}{:sold/%12u/%u}{:in-stock/%12u/%u}{:on-order/%12u/%u}{:sku/%5s-000-%u/%s-000-%u}\n",
			it.title, it.sold, it.inStock, it.onOrder, it.skuBase, it.skuNum)
		h.CloseInstance("item")
	}
	h.CloseList("item")
	h.CloseContainer("data")

	h.Emit("\n\n")

	// Narrative section: labels, padding, and per-field lines.
	h.OpenContainer("details")
	h.OpenList("item")
	for _, it := range items {
		h.OpenInstance("item")
		suffix := ""
		if it.sold > 0 {
			suffix = ".0"
		}
		h.Emit("{L:Item} '{:name/%s}':\n", it.title)
		h.Emit("{P:   }{L:Total sold}: {N:sold/%u%s}\n", it.sold, suffix)
		h.Emit("{P:   }{LWC:In stock}{:in-stock/%u}\n", it.inStock)
		h.Emit("{P:   }{LWC:On order}{:on-order/%u}\n", it.onOrder)
		h.Emit("{P:   }{L:SKU}: {Q:sku/%s-000-%u}\n", it.skuBase, it.skuNum)
		h.CloseInstance("item")
	}
	h.CloseList("item")
	h.CloseContainer("details")

	return h.CloseContainer("top")
}
