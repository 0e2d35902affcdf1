package container

import (
	"strings"

	"github.com/grpc-boot/carcare"
)

// CatalogNode is a named node of the service catalog. Children are owned by
// their parent and kept in the order they were added.
type CatalogNode struct {
	Name string

	children []*CatalogNode
}

type CatalogEntry struct {
	Node  *CatalogNode
	Depth int
}

func NewCatalogNode(name string) *CatalogNode {
	return &CatalogNode{Name: name}
}

// NewServiceCatalog builds the fixed car maintenance service hierarchy.
func NewServiceCatalog() (root *CatalogNode) {
	root = NewCatalogNode("Car Maintenance Services")

	oil := root.AddChild(NewCatalogNode("Oil Services"))
	tire := root.AddChild(NewCatalogNode("Tire Services"))
	engine := root.AddChild(NewCatalogNode("Engine Services"))

	oil.AddChild(NewCatalogNode("Oil Change"))
	oil.AddChild(NewCatalogNode("Oil Filter Replacement"))

	tire.AddChild(NewCatalogNode("Tire Rotation"))
	tire.AddChild(NewCatalogNode("Tire Replacement"))

	engine.AddChild(NewCatalogNode("Engine Diagnosis"))
	engine.AddChild(NewCatalogNode("Spark Plug Replacement"))

	return root
}

func (cn *CatalogNode) AddChild(child *CatalogNode) *CatalogNode {
	cn.children = append(cn.children, child)
	return child
}

func (cn *CatalogNode) Children() []*CatalogNode {
	children := make([]*CatalogNode, len(cn.children))
	copy(children, cn.children)
	return children
}

// Traverse returns a depth-first, pre-order iterator rooted at cn. Calling the
// iterator yields the next entry; ok is false once the walk is exhausted and
// stays false. Each call to Traverse starts a fresh walk.
func (cn *CatalogNode) Traverse() func() (entry CatalogEntry, ok bool) {
	stack := []CatalogEntry{{Node: cn, Depth: 0}}

	return func() (entry CatalogEntry, ok bool) {
		if len(stack) == 0 {
			return
		}

		entry = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		//逆序压栈，保证子节点按插入顺序出栈
		for index := len(entry.Node.children) - 1; index >= 0; index-- {
			stack = append(stack, CatalogEntry{Node: entry.Node.children[index], Depth: entry.Depth + 1})
		}

		return entry, true
	}
}

func (cn *CatalogNode) Entries() (entries []CatalogEntry) {
	next := cn.Traverse()
	for entry, ok := next(); ok; entry, ok = next() {
		entries = append(entries, entry)
	}
	return entries
}

func (cn *CatalogNode) Size() (size int) {
	next := cn.Traverse()
	for _, ok := next(); ok; _, ok = next() {
		size++
	}
	return size
}

// String dumps the subtree one node per line, indented by depth.
func (cn *CatalogNode) String() string {
	var (
		buf  strings.Builder
		next = cn.Traverse()
	)

	for entry, ok := next(); ok; entry, ok = next() {
		buf.WriteString(carcare.FormatCatalogLine(entry.Node.Name, entry.Depth))
		buf.WriteByte('\n')
	}
	return buf.String()
}
