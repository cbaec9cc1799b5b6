// Package factory constructs configured elements.
//
// A Factory pairs a dom.Document with the resolver: Make creates an element
// of the requested kind and applies the configuration before returning it,
// so callers never observe a partially configured element.
//
//	f := factory.New(htmldoc.New())
//	el, err := f.Make(tag.Label, resolve.For("email"), resolve.Content("Email"))
package factory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vango-go/tagkit/pkg/dom"
	"github.com/vango-go/tagkit/pkg/resolve"
	"github.com/vango-go/tagkit/pkg/tag"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrUnsupportedKind is returned for a tag.Kind outside the supported set.
var ErrUnsupportedKind = errors.New("factory: unsupported element kind")

// Factory creates elements in one document. It keeps no per-element state;
// it is safe for concurrent use when the document's CreateElement is.
type Factory struct {
	doc     dom.Document
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics
}

// New returns a Factory creating elements in doc.
func New(doc dom.Document, opts ...Option) *Factory {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.resolve()

	f := &Factory{
		doc:    doc,
		logger: config.Logger,
		tracer: config.Tracer,
	}
	if config.Registry != nil {
		f.metrics = newMetrics(config.Registry, config.Namespace)
	}
	return f
}

// Document returns the document the factory creates elements in.
func (f *Factory) Document() dom.Document {
	return f.doc
}

// Make creates an element of kind and applies entries to it. With no
// entries the element is returned bare. If an entry is rejected the element
// is discarded and the *resolve.AssignmentError is returned.
func (f *Factory) Make(kind tag.Kind, entries ...resolve.Entry) (dom.Element, error) {
	return f.MakeContext(context.Background(), kind, entries...)
}

// MakeContext is Make with a parent context for the construction span.
func (f *Factory) MakeContext(ctx context.Context, kind tag.Kind, entries ...resolve.Entry) (dom.Element, error) {
	return f.build(ctx, kind, len(entries), func(el dom.Element) error {
		return resolve.Apply(el, entries...)
	})
}

// MakeConfig creates an element of kind and applies the structured config.
func (f *Factory) MakeConfig(kind tag.Kind, cfg resolve.Config) (dom.Element, error) {
	n := len(cfg.Props)
	for _, set := range []bool{cfg.ID != nil, len(cfg.Class) > 0, cfg.Content != nil, cfg.For != nil} {
		if set {
			n++
		}
	}
	return f.build(context.Background(), kind, n, func(el dom.Element) error {
		return resolve.ApplyConfig(el, cfg)
	})
}

// MakeNamed looks name up in the supported set and calls Make. Names are
// matched case-insensitively; unknown names return tag.ErrUnknownTag.
func (f *Factory) MakeNamed(name string, entries ...resolve.Entry) (dom.Element, error) {
	kind, err := tag.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Make(kind, entries...)
}

func (f *Factory) build(ctx context.Context, kind tag.Kind, n int, apply func(dom.Element) error) (dom.Element, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedKind, kind)
	}
	name := kind.String()

	_, span := f.tracer.Start(ctx, "tagkit.make",
		trace.WithAttributes(
			attribute.String("tagkit.tag", name),
			attribute.Int("tagkit.entries", n),
		),
	)
	defer span.End()

	el := f.doc.CreateElement(name)
	if err := apply(el); err != nil {
		action := "unknown"
		var ae *resolve.AssignmentError
		if errors.As(err, &ae) {
			action = ae.Action.String()
		}
		f.metrics.fail(name, action)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		f.logger.Warn("element configuration failed",
			slog.String("tag", name),
			slog.String("action", action),
			slog.Any("error", err),
		)
		return nil, err
	}

	f.metrics.observe(name, n)
	f.logger.Debug("element created",
		slog.String("tag", name),
		slog.Int("entries", n),
	)
	return el, nil
}
