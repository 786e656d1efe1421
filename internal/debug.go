package internal

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/xide/triangulate/dbg"
)

func (t Triangle) String() string {
	flags := ""
	if t.IsBad {
		flags += " bad"
	}
	if t.IsExterior {
		flags += " exterior"
	}
	return fmt.Sprintf("Triangle %s (%d, %d, %d)%s", t.DbgName(), t.Indices[0], t.Indices[1], t.Indices[2], flags)
}

// Readable name, colored by winding: green for counterclockwise, cyan for
// clockwise and red for (near) zero area.
func (t Triangle) DbgName() string {
	name := dbg.Name(t.Indices)
	area := t.SignedArea()
	switch {
	case Equal(area, 0):
		return aurora.Red(name).String()
	case area > 0:
		return aurora.Green(name).String()
	default:
		return aurora.Cyan(name).String()
	}
}

func (e SharedEdge) String() string {
	owners := make([]string, 0, 2)
	for _, ti := range e.Triangles {
		if ti != NoTriangle {
			owners = append(owners, fmt.Sprint(ti))
		}
	}
	name := dbg.Name(e.Edge.Key())
	if len(owners) == 1 {
		name = aurora.Yellow(name).String()
	}
	return fmt.Sprintf("Edge %s {%d, %d} [%s]", name, e.Edge[0], e.Edge[1], strings.Join(owners, ", "))
}

func (table *EdgeTable) String() string {
	lines := make([]string, 0, len(table.Edges))
	for _, record := range table.Edges {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}

// Full structural dump, including cached coordinates and flags.
func (list TriangleList) Dump() string {
	return pretty.Sprintf("%# v", list)
}
