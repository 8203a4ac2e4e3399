package sinkgen

// DerivedNames holds the eight identifiers generated for a sink kind.
type DerivedNames struct {
	ClassName                     string // JS<name>
	Constructor                   string // JS<name>Constructor
	Controller                    string // JSReadable<name>Controller
	ControllerName                string // Readable<name>Controller
	Prototype                     string // JS<name>Prototype
	ControllerPrototype           string // JSReadable<name>ControllerPrototype
	WritableStreamSourcePrototype string // JSWritableStreamSource<name>Prototype
	WritableStreamSource          string // JSWritableStreamSource<name>
}

// Derive maps a kind name to its derived identifiers. It is a pure function;
// name validity is enforced by NewRegistry.
func Derive(name string) DerivedNames {
	return DerivedNames{
		ClassName:                     "JS" + name,
		Constructor:                   "JS" + name + "Constructor",
		Controller:                    "JSReadable" + name + "Controller",
		ControllerName:                "Readable" + name + "Controller",
		Prototype:                     "JS" + name + "Prototype",
		ControllerPrototype:           "JSReadable" + name + "ControllerPrototype",
		WritableStreamSourcePrototype: "JSWritableStreamSource" + name + "Prototype",
		WritableStreamSource:          "JSWritableStreamSource" + name,
	}
}

// All returns the identifiers in field order.
func (n DerivedNames) All() []string {
	return []string{
		n.ClassName,
		n.Constructor,
		n.Controller,
		n.ControllerName,
		n.Prototype,
		n.ControllerPrototype,
		n.WritableStreamSourcePrototype,
		n.WritableStreamSource,
	}
}
