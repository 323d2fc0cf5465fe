package drawer

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-bootstrapper/internal/store"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/measure"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
)

// Phase names the part of the bootstrapper lifecycle an execution belongs to.
type Phase string

const (
	RunPhase      Phase = "run"
	ShutdownPhase Phase = "shutdown"
)

const rootVertex = "bootstrapper"

// DOTDrawer renders a reporting tree as a DOT graph. Executables of a phase
// are chained in the order they ran and their behaviors hang off them.
type DOTDrawer struct {
	fileName string
	measures map[Phase]measure.Measure
}

type Option func(d *DOTDrawer)

// WithMeasure colors the executables of phase according to the durations
// recorded in m.
func WithMeasure(phase Phase, m measure.Measure) Option {
	return func(d *DOTDrawer) {
		d.measures[phase] = m
	}
}

// NewDOTDrawer creates a drawer writing to fileName when used as a reporter.
func NewDOTDrawer(fileName string, opts ...Option) *DOTDrawer {
	d := &DOTDrawer{
		fileName: fileName,
		measures: make(map[Phase]measure.Measure),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Report writes the DOT graph of ctx to the drawer file.
func (d *DOTDrawer) Report(ctx *reporting.Context) error {
	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = d.Draw(ctx, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.fileName)
	}

	return nil
}

// Draw writes the DOT graph of ctx to wrt.
func (d *DOTDrawer) Draw(ctx *reporting.Context, wrt io.Writer) error {
	if ctx == nil {
		return reporting.ErrNilContext
	}

	b := newGraphBuilder()

	err := b.addVertex(rootVertex, graph.VertexAttribute("shape", "doubleoctagon"))
	if err != nil {
		return err
	}

	for idx, extension := range ctx.Extensions() {
		id := fmt.Sprintf("extension %02d %s", idx, shortName(extension.Name()))

		err = b.addChild(rootVertex, id, extension.Description(), graph.VertexAttribute("shape", "component"))
		if err != nil {
			return err
		}
	}

	for _, phase := range []struct {
		phase  Phase
		record *reporting.ExecutionRecord
	}{
		{phase: RunPhase, record: ctx.Run()},
		{phase: ShutdownPhase, record: ctx.Shutdown()},
	} {
		if phase.record == nil {
			continue
		}

		err = d.addExecution(b, phase.phase, phase.record)
		if err != nil {
			return errors.Wrapf(err, "unable to draw %s", phase.phase)
		}
	}

	return dot(b, wrt)
}

func (d *DOTDrawer) addExecution(b *graphBuilder, phase Phase, record *reporting.ExecutionRecord) error {
	phaseID := fmt.Sprintf("%s: %s", phase, shortName(record.Name()))

	err := b.addChild(rootVertex, phaseID, record.Description(), graph.VertexAttribute("shape", "box"))
	if err != nil {
		return err
	}

	parent := phaseID
	for position, executable := range record.Executables() {
		id := fmt.Sprintf("%s #%02d %s", phase, position, shortName(executable.Name()))

		err = b.addChild(parent, id, executable.Description(), graph.VertexAttribute("shape", "box"))
		if err != nil {
			return err
		}

		for idx, behavior := range executable.Behaviors() {
			behaviorID := fmt.Sprintf("%s #%02d.%02d %s", phase, position, idx, shortName(behavior.Name()))

			err = b.addChild(id, behaviorID, behavior.Description(), graph.VertexAttribute("shape", "ellipse"))
			if err != nil {
				return err
			}

			err = b.graph.UpdateEdge(id, behaviorID, graph.EdgeAttribute("style", "dashed"))
			if err != nil {
				return errors.Wrap(err, "unable to update edge")
			}
		}

		parent = id
	}

	if m, ok := d.measures[phase]; ok {
		err = d.addMeasure(b, phase, record, m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	return nil
}

const maxRGB = 240

// addMeasure labels every measured executable with its average duration and
// colors it from blue, the fastest, to red, the slowest.
func (d *DOTDrawer) addMeasure(b *graphBuilder, phase Phase, record *reporting.ExecutionRecord, msr measure.Measure) error {
	elapsed := make(map[string]time.Duration)
	for position, executable := range record.Executables() {
		metric := msr.GetMetric(measure.Key(position, executable.Name()))
		if metric == nil {
			continue
		}

		id := fmt.Sprintf("%s #%02d %s", phase, position, shortName(executable.Name()))
		elapsed[id] = metric.AVGDuration()
	}

	if len(elapsed) == 0 {
		return nil
	}

	durations := make([]time.Duration, 0, len(elapsed))
	for _, duration := range elapsed {
		durations = append(durations, duration)
	}

	minValue, maxValue := slices.Min(durations), slices.Max(durations)

	for id, duration := range elapsed {
		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(duration-minValue) / float64(maxValue-minValue)
		}

		red := maxRGB * fraction
		blue := maxRGB - red

		color, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		err = b.store.UpdateVertex(id, func(p *graph.VertexProperties) {
			p.Attributes["xlabel"] = duration.String()
			p.Attributes["color"] = color.ToHEX().String()
		})
		if err != nil {
			return errors.Wrapf(err, "unable to update vertex %s", id)
		}
	}

	return nil
}

// shortName keeps the last path element of a type name.
func shortName(name string) string {
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		return name[idx+1:]
	}

	return name
}

var _ reporting.Reporter = (*DOTDrawer)(nil)

type graphBuilder struct {
	graph graph.Graph[string, string]
	store *store.MemoryStore[string, string]
}

func newGraphBuilder() *graphBuilder {
	s := store.NewMemoryStore[string, string]()

	return &graphBuilder{
		graph: graph.NewWithStore(graph.StringHash, graph.Store[string, string](s), graph.Directed()),
		store: s,
	}
}

func (b *graphBuilder) addVertex(id string, options ...func(*graph.VertexProperties)) error {
	err := b.graph.AddVertex(id, options...)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", id)
	}

	return nil
}

func (b *graphBuilder) addChild(parent, id, description string, options ...func(*graph.VertexProperties)) error {
	if description != "" {
		options = append(options, graph.VertexAttribute("tooltip", description))
	}

	err := b.addVertex(id, options...)
	if err != nil {
		return err
	}

	err = b.graph.AddEdge(parent, id)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parent, id)
	}

	return nil
}
