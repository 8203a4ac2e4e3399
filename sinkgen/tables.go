package sinkgen

// MethodAttributes is the attribute set every prototype method is installed with.
const MethodAttributes = "ReadOnly|DontDelete|Function"

// MethodBinding is one row of a prototype lookup table.
type MethodBinding struct {
	Name       string // JS-visible method name
	Symbol     string // host function implementing it
	Attributes string
	Arity      int
}

// LookupTable is a named, ordered method table.
type LookupTable struct {
	Name string
	Rows []MethodBinding
}

// ObjectMethodNames is the fixed method surface of every sink prototype.
var ObjectMethodNames = []string{"close", "flush", "end", "start", "write", "ref", "unref", "_getFd"}

// ControllerMethodNames is the fixed method surface of every controller prototype.
var ControllerMethodNames = []string{"close", "flush", "end", "start", "write"}

// Names returns the method names in row order.
func (t LookupTable) Names() []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row.Name
	}
	return out
}

func binding(name, symbol string, arity int) MethodBinding {
	return MethodBinding{Name: name, Symbol: symbol, Attributes: MethodAttributes, Arity: arity}
}

// objectTable builds the sink prototype table for kind name.
func objectTable(name string, n DerivedNames) LookupTable {
	return LookupTable{
		Name: n.Prototype + "Table",
		Rows: []MethodBinding{
			binding("close", name+"__doClose", 0),
			binding("flush", name+"__flush", 1),
			binding("end", name+"__end", 0),
			binding("start", name+"__start", 1),
			binding("write", name+"__write", 1),
			binding("ref", name+"__ref", 0),
			binding("unref", name+"__unref", 0),
			binding("_getFd", name+"__getFd", 0),
		},
	}
}

// controllerTable builds the controller prototype table for kind name.
// close and end detach the controller, so they get controller-specific
// entry points; the rest forward to the sink.
func controllerTable(name string, n DerivedNames) LookupTable {
	return LookupTable{
		Name: n.ControllerPrototype + "Table",
		Rows: []MethodBinding{
			binding("close", n.Controller+"__close", 0),
			binding("flush", name+"__flush", 1),
			binding("end", n.Controller+"__end", 0),
			binding("start", name+"__start", 1),
			binding("write", name+"__write", 1),
		},
	}
}
