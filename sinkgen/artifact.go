package sinkgen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Output file names. The definitions include the declarations and the
// compiled table by these names, so they are not configurable.
const (
	DeclarationsFile  = "JSSink.h"
	DefinitionsFile   = "JSSink.cpp"
	LookupTableFile   = "JSSink.lut.txt"
	CompiledTableFile = "JSSink.lut.h"
)

// ArtifactKind identifies one of the three generated views.
type ArtifactKind int

const (
	Declarations ArtifactKind = iota
	Definitions
	LookupTableText
)

func (k ArtifactKind) String() string {
	switch k {
	case Declarations:
		return "declarations"
	case Definitions:
		return "definitions"
	case LookupTableText:
		return "lookup-table"
	default:
		return fmt.Sprintf("ArtifactKind(%d)", int(k))
	}
}

// Filename returns the file the artifact is written to.
func (k ArtifactKind) Filename() string {
	switch k {
	case Declarations:
		return DeclarationsFile
	case Definitions:
		return DefinitionsFile
	case LookupTableText:
		return LookupTableFile
	default:
		return ""
	}
}

// Artifact is one rendered output file.
type Artifact struct {
	Kind     ArtifactKind
	Filename string
	Content  []byte
}

// view renders an artifact as a shared preamble, one block per kind in
// registry order, and a shared postscript.
type view struct {
	kind       ArtifactKind
	preamble   *template.Template
	block      *template.Template
	postscript *template.Template
}

var templateFuncs = template.FuncMap{
	"tableRows": tableRows,
}

func newView(kind ArtifactKind, preamble, block, postscript string) *view {
	parse := func(part, text string) *template.Template {
		name := kind.String() + "/" + part
		return template.Must(template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(text))
	}
	return &view{
		kind:       kind,
		preamble:   parse("preamble", preamble),
		block:      parse("block", block),
		postscript: parse("postscript", postscript),
	}
}

func (v *view) render(s *Schema) (Artifact, error) {
	var buf bytes.Buffer
	if err := v.preamble.Execute(&buf, s); err != nil {
		return Artifact{}, fmt.Errorf("rendering %s preamble: %w", v.kind, err)
	}
	for _, m := range s.Kinds {
		if err := v.block.Execute(&buf, m); err != nil {
			return Artifact{}, fmt.Errorf("rendering %s block for %s: %w", v.kind, m.Name, err)
		}
	}
	if err := v.postscript.Execute(&buf, s); err != nil {
		return Artifact{}, fmt.Errorf("rendering %s postscript: %w", v.kind, err)
	}
	return Artifact{Kind: v.kind, Filename: v.kind.Filename(), Content: buf.Bytes()}, nil
}

// tableRows formats table rows with aligned columns.
func tableRows(t LookupTable) []string {
	nameWidth, symbolWidth := 0, 0
	for _, row := range t.Rows {
		nameWidth = max(nameWidth, len(row.Name))
		symbolWidth = max(symbolWidth, len(row.Symbol))
	}
	rows := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		var b strings.Builder
		fmt.Fprintf(&b, "%-*s  %-*s  %s %d", nameWidth+4, row.Name, symbolWidth+4, row.Symbol, row.Attributes, row.Arity)
		rows[i] = b.String()
	}
	return rows
}
