package store

// ToTree converts the flat base data into a hierarchical representation.
//
// Records are grouped by parentIDField: every record whose parentIDField
// value equals rootParentValue becomes a root node, and each node gets a
// childrenField array built from the records whose parentIDField equals the
// node's id. Records lacking an id field take no part in the conversion -
// they can neither be addressed nor referenced as a parent.
//
// Nodes are shallow clones; the base data is not touched. A parent chain
// that loops back onto itself (self-referential or mutual) is cut at the
// repeated record: the repeated node contributes no children.
func (s *Store) ToTree(parentIDField, childrenField FieldNameString, rootParentValue any) []Record {
	childrenOf := make(map[string][]Record)
	addressable := make([]Record, 0, len(s.data))

	for _, record := range s.data {
		if !record.Has(IDField) {
			continue
		}

		addressable = append(addressable, record)
		parentKey := lookupKey(record[parentIDField])
		childrenOf[parentKey] = append(childrenOf[parentKey], record)
	}

	visited := make(map[string]bool)
	rootKey := lookupKey(rootParentValue)

	roots := make([]Record, 0)
	for _, record := range childrenOf[rootKey] {
		roots = append(roots, buildTreeNode(record, childrenField, childrenOf, visited))
	}

	return roots
}

// buildTreeNode clones the record and recursively attaches its children.
// The visited set tracks ids on the current path for cycle cutting.
func buildTreeNode(
	record Record,
	childrenField FieldNameString,
	childrenOf map[string][]Record,
	visited map[string]bool,
) Record {

	node := record.Clone()
	idKey := lookupKey(record.ID())

	if visited[idKey] {
		node[childrenField] = []Record{}

		return node
	}

	visited[idKey] = true
	defer delete(visited, idKey)

	children := make([]Record, 0)
	for _, child := range childrenOf[idKey] {
		children = append(children, buildTreeNode(child, childrenField, childrenOf, visited))
	}

	node[childrenField] = children

	return node
}

// FromTree recursively flattens a hierarchical structure into a flat record
// slice. Each emitted record gets its parentIDField set to the parent
// node's id (nil for root nodes) and its childrenField stripped. Emitted
// records are shallow clones; the input nodes are not touched. A nil input
// returns an empty slice rather than failing.
func FromTree(nodes []Record, parentIDField, childrenField FieldNameString) []Record {
	flat := make([]Record, 0, len(nodes))

	return flattenTreeNodes(nodes, parentIDField, childrenField, nil, flat)
}

// FromTree is the Store-level form of the package function, for callers
// holding a Store rather than the package.
func (s *Store) FromTree(nodes []Record, parentIDField, childrenField FieldNameString) []Record {
	return FromTree(nodes, parentIDField, childrenField)
}

func flattenTreeNodes(
	nodes []Record,
	parentIDField, childrenField FieldNameString,
	parentID any,
	flat []Record,
) []Record {

	for _, node := range nodes {
		if node == nil {
			continue
		}

		record := node.Clone()
		children := record[childrenField]
		delete(record, childrenField)
		record[parentIDField] = parentID

		flat = append(flat, record)
		flat = flattenTreeNodes(childRecords(children), parentIDField, childrenField, record.ID(), flat)
	}

	return flat
}

// childRecords normalizes a children field value to a record slice.
// JSON-decoded trees carry []any elements; typed trees carry []Record.
// Anything else yields no children.
func childRecords(value any) []Record {
	switch children := value.(type) {
	case nil:
		return nil

	case []Record:
		return children

	case []any:
		records := make([]Record, 0, len(children))
		for _, child := range children {
			switch rec := child.(type) {
			case Record:
				records = append(records, rec)
			case map[string]any:
				records = append(records, Record(rec))
			}
		}

		return records

	case []map[string]any:
		records := make([]Record, 0, len(children))
		for _, child := range children {
			records = append(records, Record(child))
		}

		return records

	default:
		return nil
	}
}
