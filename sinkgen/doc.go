// Package sinkgen generates the JavaScriptCore wrapper sources for native
// stream sinks.
//
// # Reading Guide
//
// Start with these three files to understand the generator:
//   - registry.go: the compiled-in list of sink kinds and their SinkID order
//   - schema.go: the one model (kinds → derived names → method tables) every artifact is rendered from
//   - generator.go: the run state machine (emit → write → table compiler)
//
// # Architecture
//
// Each artifact is a view over the Schema: a preamble, one block per kind in
// registry order, and a postscript:
//   - emit_declarations.go: JSSink.h, the class family of every kind
//   - emit_definitions.go: JSSink.cpp, method bodies, stream dispatch and the extern "C" surface
//   - emit_lookup.go: JSSink.lut.txt, the @begin/@end method tables
//
// lookup.go reads the table text back so a run checks its own output against
// the schema before anything is written. writer.go stages the files and
// renames them into place; compiler.go runs the external tool that turns
// JSSink.lut.txt into JSSink.lut.h.
//
// sinkgen/wrapper models the ownership protocol the generated classes
// implement and is where that protocol is tested.
package sinkgen
