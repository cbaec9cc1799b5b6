package factory

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-go/tagkit/pkg/dom/domtest"
	"github.com/vango-go/tagkit/pkg/dom/htmldoc"
	"github.com/vango-go/tagkit/pkg/resolve"
	"github.com/vango-go/tagkit/pkg/tag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestMakeBareForEveryKind(t *testing.T) {
	f := New(htmldoc.New())

	for _, kind := range tag.All() {
		el, err := f.Make(kind)
		require.NoError(t, err, kind.String())
		assert.Equal(t, kind.String(), el.TagName())
		assert.Empty(t, el.ID(), kind.String())
		assert.Empty(t, el.ClassList().Tokens(), kind.String())
		assert.Empty(t, el.InnerHTML(), kind.String())
	}
}

func TestMakeAppliesEntries(t *testing.T) {
	f := New(htmldoc.New())

	el, err := f.Make(tag.Label,
		resolve.ID("l"),
		resolve.Class("a", "b"),
		resolve.For("email"),
		resolve.Content("<span>x</span>"),
		resolve.Prop("title", "tip"),
	)
	require.NoError(t, err)

	h := el.(*htmldoc.Element)
	assert.Equal(t, "l", h.ID())
	assert.Equal(t, []string{"a", "b"}, h.ClassList().Tokens())
	forAttr, _ := h.GetAttribute("for")
	assert.Equal(t, "email", forAttr)
	assert.Equal(t, "x", h.Find("span").Text())
	title, _ := h.Property("title")
	assert.Equal(t, "tip", title)
}

func TestMakeReturnsFreshElements(t *testing.T) {
	doc := domtest.NewDocument()
	f := New(doc)

	a, err := f.Make(tag.Div, resolve.ID("a"))
	require.NoError(t, err)
	b, err := f.Make(tag.Div)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Empty(t, b.ID())
	assert.Len(t, doc.Created, 2)
}

func TestMakeInvalidKind(t *testing.T) {
	f := New(domtest.NewDocument())

	_, err := f.Make(tag.Invalid)
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = f.Make(tag.Kind(250))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestMakeNamed(t *testing.T) {
	f := New(htmldoc.New())

	el, err := f.MakeNamed("TextArea", resolve.Prop("placeholder", "p"))
	require.NoError(t, err)
	assert.Equal(t, "textarea", el.TagName())

	_, err = f.MakeNamed("blink")
	assert.ErrorIs(t, err, tag.ErrUnknownTag)
}

func TestMakeConfig(t *testing.T) {
	f := New(htmldoc.New())

	el, err := f.MakeConfig(tag.Input, resolve.Config{
		ID:    resolve.String("q"),
		Props: resolve.Entries{}.Set("type", "search").Set("disabled", true),
	})
	require.NoError(t, err)

	h := el.(*htmldoc.Element)
	out, err := h.OuterHTML()
	require.NoError(t, err)
	assert.Equal(t, `<input id="q" type="search" disabled=""/>`, out)
}

func TestMakeFailure(t *testing.T) {
	boom := errors.New("rejected")
	doc := domtest.NewDocument()
	doc.FailOn(domtest.OpSetProperty, "value", boom)

	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	f := New(doc,
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithMetrics(reg),
	)

	el, err := f.Make(tag.Input, resolve.ID("x"), resolve.Prop("value", "v"))
	assert.Nil(t, el)
	assert.ErrorIs(t, err, resolve.ErrInvalidPropertyAssignment)
	assert.ErrorIs(t, err, boom)

	assert.Contains(t, logs.String(), "element configuration failed")
	assert.Contains(t, logs.String(), "tag=input")
	assert.Contains(t, logs.String(), "action=property")

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.failures.WithLabelValues("input", "property")))
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.created.WithLabelValues("input")))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := New(htmldoc.New(), WithMetrics(reg), WithNamespace("test"))

	for i := 0; i < 3; i++ {
		_, err := f.Make(tag.Li, resolve.Class("item"))
		require.NoError(t, err)
	}
	_, err := f.Make(tag.Ul)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(f.metrics.created.WithLabelValues("li")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.created.WithLabelValues("ul")))

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "test_elements_created_total")
	assert.Contains(t, names, "test_entries_per_element")
}

func TestMetricsSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(htmldoc.New(), WithMetrics(reg))
	b := New(htmldoc.New(), WithMetrics(reg))

	_, err := a.Make(tag.Em)
	require.NoError(t, err)
	_, err = b.Make(tag.Em)
	require.NoError(t, err)

	assert.Same(t, a.metrics.created, b.metrics.created)
	assert.Equal(t, 2.0, testutil.ToFloat64(a.metrics.created.WithLabelValues("em")))
}

func TestMetricsRegistrationConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tagkit",
		Name:      "elements_created_total",
		Help:      "Something else",
	}))

	assert.Panics(t, func() { New(htmldoc.New(), WithMetrics(reg)) })
}

// namedProvider records the tracer names requested from it.
type namedProvider struct {
	noop.TracerProvider
	names []string
}

func (p *namedProvider) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	p.names = append(p.names, name)
	return p.TracerProvider.Tracer(name, opts...)
}

func TestTracerName(t *testing.T) {
	p := &namedProvider{}
	otel.SetTracerProvider(p)

	New(htmldoc.New(), WithTracerName("tagkit/test"))
	New(htmldoc.New())

	assert.Equal(t, []string{"tagkit/test", defaultTracerName}, p.names)
}

func TestDebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := New(htmldoc.New(), WithLogger(logger), WithTracer(noop.NewTracerProvider().Tracer("test")))

	_, err := f.Make(tag.P, resolve.Content("hi"))
	require.NoError(t, err)

	line := logs.String()
	assert.True(t, strings.Contains(line, "element created"), line)
	assert.Contains(t, line, "entries=1")
}

func TestDefaults(t *testing.T) {
	f := New(htmldoc.New())
	assert.NotNil(t, f.logger)
	assert.NotNil(t, f.tracer)
	assert.Nil(t, f.metrics)
	assert.NotNil(t, f.Document())
}
