package internal

// EdgeTable records, for every edge of a triangulation, the one or two
// triangles that own it. Records live in a slice so passes over the table are
// cheap; the index map gives O(1) lookup by normalized edge. Records are
// addressed by slot, never by pointer, since the slice may grow.
type EdgeTable struct {
	Edges []SharedEdge
	index map[Edge]int
}

func NewEdgeTable(capacity int) *EdgeTable {
	return &EdgeTable{
		Edges: make([]SharedEdge, 0, capacity),
		index: make(map[Edge]int, capacity),
	}
}

// Build a table from scratch for a finished triangle buffer.
func BuildEdgeTable(triangles TriangleList) *EdgeTable {
	table := NewEdgeTable(len(triangles) * 2)
	for i := range triangles {
		table.AddTriangle(&triangles[i], i)
	}
	return table
}

func (table *EdgeTable) Len() int {
	return len(table.Edges)
}

// Slot of the record for the edge, or -1.
func (table *EdgeTable) Find(edge Edge) int {
	if slot, ok := table.index[edge.Key()]; ok {
		return slot
	}
	return -1
}

// Register the three edges of triangle number ti. An edge seen before gets ti
// as its second owner; a new edge is appended as a boundary edge.
func (table *EdgeTable) AddTriangle(tri *Triangle, ti int) {
	for _, edge := range tri.Edges() {
		slot := table.Find(edge)
		if slot < 0 {
			table.index[edge.Key()] = len(table.Edges)
			table.Edges = append(table.Edges, SharedEdge{
				Edge:      edge,
				Triangles: [2]int{ti, NoTriangle},
			})
			continue
		}
		record := &table.Edges[slot]
		if record.Triangles[1] != NoTriangle {
			throw(ErrInvalidEdgeTable, "edge %v already shared by triangles %v", edge, record.Triangles)
		}
		record.Triangles[1] = ti
	}
}

// Replace the owner from with to on the record for edge.
func (table *EdgeTable) replaceOwner(edge Edge, from, to int) {
	slot := table.Find(edge)
	if slot < 0 {
		throw(ErrInvalidEdgeTable, "edge %v is missing", edge)
	}
	record := &table.Edges[slot]
	switch from {
	case record.Triangles[0]:
		record.Triangles[0] = to
	case record.Triangles[1]:
		record.Triangles[1] = to
	default:
		throw(ErrInvalidEdgeTable, "edge %v is not owned by triangle %d", edge, from)
	}
}

// Change the endpoints stored in the record at slot, keeping the index in sync.
func (table *EdgeTable) rekey(slot int, edge Edge) {
	delete(table.index, table.Edges[slot].Edge.Key())
	table.Edges[slot].Edge = edge
	table.index[edge.Key()] = slot
}

// Boundary edges, i.e. those owned by a single triangle.
func (table *EdgeTable) Boundary() []Edge {
	var result []Edge
	for _, record := range table.Edges {
		if record.Triangles[1] == NoTriangle {
			result = append(result, record.Edge)
		}
	}
	return result
}
