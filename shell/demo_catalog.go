package shell

import (
	"fmt"
	"strings"

	"github.com/grpc-boot/carcare/container"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

const MetricViews = "views"

type CatalogDemo struct {
	root *container.CatalogNode
}

// catalogItem is the nested form of the catalog for json and yaml output.
type catalogItem struct {
	Name     string        `yaml:"name" json:"name"`
	Children []catalogItem `yaml:"children,omitempty" json:"children,omitempty"`
}

func NewCatalogDemo() *CatalogDemo {
	return &CatalogDemo{root: container.NewServiceCatalog()}
}

func (cd *CatalogDemo) Name() string {
	return DemoCatalog
}

func (cd *CatalogDemo) Title() string {
	return "Service Hierarchy - Tree View"
}

func (cd *CatalogDemo) Metrics() []string {
	return []string{MetricViews}
}

func (cd *CatalogDemo) Usage() []Usage {
	return []Usage{
		{Command: "show", Description: "draw the service hierarchy"},
		{Command: "dump", Description: "print the hierarchy as indented text"},
		{Command: "list", Description: "list every node with its depth"},
	}
}

func (cd *CatalogDemo) Root() *container.CatalogNode {
	return cd.root
}

func (cd *CatalogDemo) Handle(s *Session, cmd Command) (handled bool, err error) {
	switch cmd.Name {
	case "show", "tree":
		s.Monitor().Incr(MetricViews)
		switch s.Renderer().Mode() {
		case OutputJSON:
			return true, s.Renderer().RenderJSON(nest(cd.root))
		case OutputYAML:
			return true, s.Renderer().RenderYAML(nest(cd.root))
		}
		s.Renderer().RenderTree(cd.root)
		return true, nil
	case "dump":
		s.Monitor().Incr(MetricViews)
		s.Renderer().Println(strings.TrimSuffix(cd.root.String(), "\n"))
		return true, nil
	case "list":
		s.Monitor().Incr(MetricViews)
		return true, cd.list(s)
	}
	return false, nil
}

func (cd *CatalogDemo) list(s *Session) error {
	entries := cd.root.Entries()
	return s.Renderer().RenderListing(Listing{
		Lines: lo.Map(entries, func(entry container.CatalogEntry, _ int) string {
			return fmt.Sprintf("%d %s", entry.Depth, entry.Node.Name)
		}),
		Header: table.Row{"Depth", "Service"},
		Rows: lo.Map(entries, func(entry container.CatalogEntry, _ int) table.Row {
			return table.Row{entry.Depth, entry.Node.Name}
		}),
		Items: lo.Map(entries, func(entry container.CatalogEntry, _ int) map[string]interface{} {
			return map[string]interface{}{"name": entry.Node.Name, "depth": entry.Depth}
		}),
	})
}

func nest(node *container.CatalogNode) catalogItem {
	return catalogItem{
		Name: node.Name,
		Children: lo.Map(node.Children(), func(child *container.CatalogNode, _ int) catalogItem {
			return nest(child)
		}),
	}
}
