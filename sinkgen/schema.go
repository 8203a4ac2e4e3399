package sinkgen

import (
	"errors"
	"fmt"
)

// ErrNameCollision is returned when two kinds derive the same identifier.
var ErrNameCollision = errors.New("derived identifier collision")

// sharedOwner marks identifiers emitted once for all kinds.
const sharedOwner = "<shared>"

// SharedIdentifiers are the names the artifacts define once, outside any
// kind block. No kind may derive one of them.
var SharedIdentifiers = []string{
	"JSSinkControllerBase",
	"JSSink_isSink",
	"functionStartDirectStream",
	"createJSSinkPrototype",
	"createJSSinkControllerPrototype",
	"createJSSinkControllerStructure",
	"Bun__onSinkDestroyed",
}

// KindModel is everything the emitters need to render one kind.
type KindModel struct {
	Kind
	Names           DerivedNames
	ObjectTable     LookupTable
	ControllerTable LookupTable
}

// HostFunctions returns the table entry points defined in the generated
// definitions file, in a stable order.
func (m KindModel) HostFunctions() []string {
	return []string{
		m.Name + "__ref",
		m.Name + "__unref",
		m.Name + "__getFd",
		m.Name + "__doClose",
		m.Names.Controller + "__close",
		m.Names.Controller + "__end",
	}
}

// NativeFunctions returns the symbols the native sink implementation must
// provide for this kind.
func (m KindModel) NativeFunctions() []string {
	return []string{
		m.Name + "__memoryCost",
		m.Name + "__construct",
		m.Name + "__finalize",
		m.Name + "__close",
		m.Name + "__endWithSink",
		m.Name + "__flush",
		m.Name + "__write",
		m.Name + "__start",
		m.Name + "__end",
		m.Name + "__updateRef",
		m.Name + "__getInternalFd",
	}
}

// ExportedFunctions returns the extern "C" entry points the generated
// definitions file exposes to the native side.
func (m KindModel) ExportedFunctions() []string {
	return []string{
		m.Name + "__setDestroyCallback",
		m.Name + "__createObject",
		m.Name + "__fromJS",
		m.Name + "__detachPtr",
		m.Name + "__assignToStream",
		m.Name + "__onReady",
		m.Name + "__onStart",
		m.Name + "__onClose",
		"function" + m.Name + "__getter",
	}
}

// identifiers returns every symbol this kind contributes, deduplicated.
func (m KindModel) identifiers() []string {
	var all []string
	all = append(all, m.Names.All()...)
	all = append(all, m.ObjectTable.Name, m.ControllerTable.Name)
	for _, row := range m.ObjectTable.Rows {
		all = append(all, row.Symbol)
	}
	for _, row := range m.ControllerTable.Rows {
		all = append(all, row.Symbol)
	}
	all = append(all, m.NativeFunctions()...)
	all = append(all, m.ExportedFunctions()...)

	seen := make(map[string]bool, len(all))
	out := all[:0]
	for _, id := range all {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Schema is the single model the three artifacts are rendered from.
type Schema struct {
	Kinds []KindModel
}

// BuildSchema derives names and tables for every registered kind and checks
// that no identifier is produced by more than one kind or clashes with a
// SharedIdentifiers name.
func BuildSchema(r *Registry) (*Schema, error) {
	if r == nil || r.Len() == 0 {
		return nil, ErrEmptyRegistry
	}
	s := &Schema{Kinds: make([]KindModel, 0, r.Len())}
	owner := make(map[string]string)
	for _, id := range SharedIdentifiers {
		owner[id] = sharedOwner
	}
	for _, k := range r.Kinds() {
		names := Derive(k.Name)
		m := KindModel{
			Kind:            k,
			Names:           names,
			ObjectTable:     objectTable(k.Name, names),
			ControllerTable: controllerTable(k.Name, names),
		}
		for _, id := range m.identifiers() {
			if prev, ok := owner[id]; ok {
				return nil, fmt.Errorf("%w: %q produced by both %s and %s", ErrNameCollision, id, prev, k.Name)
			}
			owner[id] = k.Name
		}
		s.Kinds = append(s.Kinds, m)
	}
	return s, nil
}

// Tables returns every lookup table in emission order.
func (s *Schema) Tables() []LookupTable {
	out := make([]LookupTable, 0, 2*len(s.Kinds))
	for _, m := range s.Kinds {
		out = append(out, m.ObjectTable, m.ControllerTable)
	}
	return out
}
