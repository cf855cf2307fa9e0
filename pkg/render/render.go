package render

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/storygraph/storygraph/pkg/errors"
	"github.com/storygraph/storygraph/pkg/observability"
)

// Engine selects the Graphviz layout algorithm.
type Engine string

const (
	// EngineNeato lays out relationship webs radially around the root node.
	EngineNeato Engine = "neato"
	// EngineDot lays out timeline chains in strict layers.
	EngineDot Engine = "dot"
)

// ParseEngine validates an engine name from user input.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(s)) {
	case EngineNeato:
		return EngineNeato, nil
	case EngineDot:
		return EngineDot, nil
	default:
		return "", errors.New(errors.CodeBadRequest, "unknown layout engine %q", s)
	}
}

func (e Engine) layout() graphviz.Layout {
	if e == EngineDot {
		return graphviz.DOT
	}
	return graphviz.NEATO
}

// Result holds a finished render: the embeddable SVG and the DOT it was
// produced from.
type Result struct {
	SVG []byte `json:"svg"`
	DOT string `json:"dot"`
}

// Render lays out a DOT document with the given engine and returns the
// post-processed SVG. Layout failures (malformed DOT, engine errors) map to
// INTERNAL_ERROR.
func Render(ctx context.Context, dot string, engine Engine) (*Result, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "initializing graphviz")
	}
	defer gv.Close()
	gv.SetLayout(engine.layout())

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "parsing DOT")
	}
	defer g.Close()

	observability.Render().OnLayoutStart(ctx, string(engine), len(dot))
	start := time.Now()
	var buf bytes.Buffer
	err = gv.Render(ctx, g, graphviz.SVG, &buf)
	observability.Render().OnLayoutComplete(ctx, string(engine), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "rendering with %s", engine)
	}

	return &Result{SVG: Embeddable(buf.Bytes()), DOT: dot}, nil
}
