package sinkgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive_FileSink(t *testing.T) {
	assert.Equal(t, DerivedNames{
		ClassName:                     "JSFileSink",
		Constructor:                   "JSFileSinkConstructor",
		Controller:                    "JSReadableFileSinkController",
		ControllerName:                "ReadableFileSinkController",
		Prototype:                     "JSFileSinkPrototype",
		ControllerPrototype:           "JSReadableFileSinkControllerPrototype",
		WritableStreamSourcePrototype: "JSWritableStreamSourceFileSinkPrototype",
		WritableStreamSource:          "JSWritableStreamSourceFileSink",
	}, Derive("FileSink"))
}

func TestDerive_Idempotent(t *testing.T) {
	for _, name := range DefaultRegistry().Names() {
		assert.Equal(t, Derive(name), Derive(name), name)
	}
}

func TestDerive_DisjointAcrossDefaultKinds(t *testing.T) {
	// GIVEN every derived identifier of the production kinds
	seen := make(map[string]string)
	for _, name := range DefaultRegistry().Names() {
		for _, id := range Derive(name).All() {
			// THEN no identifier is produced twice
			if prev, ok := seen[id]; ok {
				t.Errorf("%s derived by both %s and %s", id, prev, name)
			}
			seen[id] = name
		}
	}
	assert.Len(t, seen, 8*DefaultRegistry().Len())
}
