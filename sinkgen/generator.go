package sinkgen

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State is a step of a generation run.
type State int

const (
	Idle State = iota
	EmitDeclarations
	EmitDefinitions
	EmitLookupTable
	WriteFiles
	InvokeSecondaryTool
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case EmitDeclarations:
		return "emit-declarations"
	case EmitDefinitions:
		return "emit-definitions"
	case EmitLookupTable:
		return "emit-lookup-table"
	case WriteFiles:
		return "write-files"
	case InvokeSecondaryTool:
		return "invoke-secondary-tool"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StateError records the step a run failed in.
type StateError struct {
	State State
	Err   error
}

func (e *StateError) Error() string { return fmt.Sprintf("%s: %v", e.State, e.Err) }

func (e *StateError) Unwrap() error { return e.Err }

// Compiler turns lookup-table text into the compiled table header.
type Compiler interface {
	Compile(ctx context.Context, lutPath, outPath string) error
}

// Generator renders and writes the three artifacts for a registry, then
// runs the table compiler over the lookup-table text.
type Generator struct {
	registry *Registry
	compiler Compiler
	logger   *logrus.Logger
	state    State
}

// Option configures a Generator.
type Option func(*Generator)

// WithCompiler sets the table compiler. A nil compiler skips the last step.
func WithCompiler(c Compiler) Option {
	return func(g *Generator) { g.compiler = c }
}

// WithLogger sets the logger; the standard logrus logger is used otherwise.
func WithLogger(l *logrus.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator returns a generator for r. By default it runs
// DefaultTableCompiler.
func NewGenerator(r *Registry, opts ...Option) *Generator {
	g := &Generator{
		registry: r,
		compiler: NewTableCompiler(DefaultTableCompiler),
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns the step the last run reached.
func (g *Generator) State() State { return g.state }

// Result lists what a successful run produced.
type Result struct {
	Artifacts []Artifact
	Paths     []string // written files, in artifact order
}

// Run performs one full, non-incremental generation into outDir. Every
// call starts from Idle and any failure aborts the run.
func (g *Generator) Run(ctx context.Context, outDir string) (*Result, error) {
	log := g.logger.WithFields(logrus.Fields{
		"run": uuid.NewString(),
		"out": outDir,
	})
	g.state = Idle

	fail := func(err error) (*Result, error) {
		failedIn := g.state
		g.state = Failed
		log.WithField("state", failedIn).Debugf("generation failed: %v", err)
		return nil, &StateError{State: failedIn, Err: err}
	}

	g.enter(log, EmitDeclarations)
	schema, err := BuildSchema(g.registry)
	if err != nil {
		return fail(err)
	}

	renderers := []struct {
		state  State
		render func(*Schema) (Artifact, error)
	}{
		{EmitDeclarations, RenderDeclarations},
		{EmitDefinitions, RenderDefinitions},
		{EmitLookupTable, RenderLookupTable},
	}
	artifacts := make([]Artifact, 0, len(renderers))
	for _, r := range renderers {
		if g.state != r.state {
			g.enter(log, r.state)
		}
		a, err := r.render(schema)
		if err != nil {
			return fail(err)
		}
		artifacts = append(artifacts, a)
	}

	tables, err := ParseLookupTable(artifacts[len(artifacts)-1].Content)
	if err != nil {
		return fail(err)
	}
	if err := VerifyLookupTable(schema, tables); err != nil {
		return fail(err)
	}

	g.enter(log, WriteFiles)
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return fail(err)
	}
	paths, err := writeArtifacts(abs, artifacts)
	if err != nil {
		return fail(err)
	}
	for _, a := range artifacts {
		log.WithFields(logrus.Fields{
			"artifact": a.Kind,
			"size":     humanize.Bytes(uint64(len(a.Content))),
		}).Debugf("wrote %s", a.Filename)
	}

	if g.compiler != nil {
		g.enter(log, InvokeSecondaryTool)
		lutPath := filepath.Join(abs, LookupTableFile)
		outPath := filepath.Join(abs, CompiledTableFile)
		if err := g.compiler.Compile(ctx, lutPath, outPath); err != nil {
			return fail(err)
		}
	} else {
		log.Debug("table compiler disabled, skipping")
	}

	g.enter(log, Done)
	log.WithField("kinds", g.registry.Len()).Infof("generated %d artifacts", len(artifacts))
	return &Result{Artifacts: artifacts, Paths: paths}, nil
}

func (g *Generator) enter(log *logrus.Entry, s State) {
	log.WithField("from", g.state).Debugf("entering %s", s)
	g.state = s
}
