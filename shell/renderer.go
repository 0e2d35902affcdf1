package shell

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/grpc-boot/carcare/container"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Listing is one query result in every shape the renderer can print.
type Listing struct {
	Empty  string
	Lines  []string
	Header table.Row
	Rows   []table.Row
	Items  interface{}
}

type Renderer struct {
	output  io.Writer
	mode    string
	title   *color.Color
	success *color.Color
	failure *color.Color
}

func NewRenderer(output io.Writer, mode string, noColor bool) *Renderer {
	r := &Renderer{
		output:  output,
		mode:    mode,
		title:   color.New(color.FgWhite, color.BgGreen, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}

	if noColor {
		r.title.DisableColor()
		r.success.DisableColor()
		r.failure.DisableColor()
	}

	return r
}

func (r *Renderer) Mode() string {
	return r.mode
}

func (r *Renderer) Title(title string) {
	r.title.Fprintln(r.output, title) // nolint: errcheck
}

func (r *Renderer) Success(format string, args ...interface{}) {
	r.success.Fprintln(r.output, fmt.Sprintf(format, args...)) // nolint: errcheck
}

func (r *Renderer) Failure(format string, args ...interface{}) {
	r.failure.Fprintln(r.output, fmt.Sprintf(format, args...)) // nolint: errcheck
}

func (r *Renderer) Println(line string) {
	fmt.Fprintln(r.output, line) // nolint: errcheck
}

func (r *Renderer) RenderListing(listing Listing) error {
	switch r.mode {
	case OutputJSON:
		return r.RenderJSON(listing.Items)
	case OutputYAML:
		return r.RenderYAML(listing.Items)
	}

	if len(listing.Lines) == 0 {
		r.Println(listing.Empty)
		return nil
	}

	if r.mode == OutputTable && listing.Header != nil {
		r.RenderTable(listing.Header, listing.Rows)
		return nil
	}

	for _, line := range listing.Lines {
		r.Println(line)
	}
	return nil
}

func (r *Renderer) RenderTable(header table.Row, rows []table.Row) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)
	tw.SetStyle(table.Style{
		Name: "Carcare",
		Box: table.BoxStyle{
			MiddleVertical: "|",
			PaddingLeft:    " ",
			PaddingRight:   " ",
		},
		Options: table.Options{
			DoNotColorBordersAndSeparators: true,
			DrawBorder:                     false,
			SeparateColumns:                true,
			SeparateFooter:                 false,
			SeparateHeader:                 false,
			SeparateRows:                   false,
		},
		Color:  table.ColorOptionsDefault,
		Format: table.FormatOptionsDefault,
		HTML:   table.DefaultHTMLOptions,
		Title:  table.TitleOptionsDefault,
	})
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	tw.Render()
}

func (r *Renderer) RenderJSON(items interface{}) error {
	body, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "render json")
	}

	fmt.Fprintln(r.output, string(body)) // nolint: errcheck
	return nil
}

func (r *Renderer) RenderYAML(items interface{}) error {
	body, err := yaml.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "render yaml")
	}

	fmt.Fprint(r.output, string(body)) // nolint: errcheck
	return nil
}

// RenderTree draws the catalog with connected branches.
func (r *Renderer) RenderTree(root *container.CatalogNode) {
	lw := list.NewWriter()
	lw.SetOutputMirror(r.output)
	lw.SetStyle(list.StyleConnectedRounded)

	depth := 0
	next := root.Traverse()
	for entry, ok := next(); ok; entry, ok = next() {
		for ; depth < entry.Depth; depth++ {
			lw.Indent()
		}
		for ; depth > entry.Depth; depth-- {
			lw.UnIndent()
		}
		lw.AppendItem(entry.Node.Name)
	}

	lw.Render()
}
