package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/geocoder89/eventdesk/internal/apperr"
	"github.com/geocoder89/eventdesk/internal/observability"
	"github.com/geocoder89/eventdesk/internal/records"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const filePermissions = 0o644

// Collection owns one backing file holding one record per line.
type Collection[T any] struct {
	path          string
	codec         records.Codec[T]
	requireExists bool

	log    *slog.Logger
	prom   *observability.Prom
	tracer trace.Tracer
}

type Option[T any] func(*Collection[T])

func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(c *Collection[T]) {
		if log != nil {
			c.log = log
		}
	}
}

func WithProm[T any](p *observability.Prom) Option[T] {
	return func(c *Collection[T]) { c.prom = p }
}

// RequireExists makes a missing backing file an IO error on load.
func RequireExists[T any]() Option[T] {
	return func(c *Collection[T]) { c.requireExists = true }
}

func NewCollection[T any](path string, codec records.Codec[T], opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		path:   path,
		codec:  codec,
		log:    slog.New(slog.DiscardHandler),
		tracer: otel.Tracer("eventdesk/repo/textfile"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collection[T]) Path() string { return c.path }

func (c *Collection[T]) op(name string) string {
	return string(c.codec.Kind) + "." + name
}

func (c *Collection[T]) observe(op string, fn func() error) error {
	if c.prom == nil {
		return fn()
	}
	return c.prom.ObserveStore(op, fn)
}

// LoadAll reads every decodable record in file order. Blank and malformed
// lines are skipped. A missing file is an empty collection unless the
// collection was built with RequireExists.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	op := c.op("load_all")
	ctx, span := c.tracer.Start(ctx, op, trace.WithAttributes(attribute.String("file.path", c.path)))
	defer span.End()

	var items []T
	err := c.observe(op, func() error {
		var err error
		items, err = c.load(ctx)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("records", len(items)))
	return items, nil
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	f, err := os.Open(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !c.requireExists {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: open %s: %w", apperr.ErrIO, c.path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			c.log.WarnContext(ctx, "close collection file", "path", c.path, "err", err)
		}
	}()

	items := []T{}
	skipped := 0
	lineNo := 0

	r := bufio.NewReader(f)
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("%w: read %s: %w", apperr.ErrIO, c.path, readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		lineNo++

		item, err := c.codec.Decode(strings.TrimRight(line, "\r\n"))
		switch {
		case errors.Is(err, records.ErrBlankLine):
		case err != nil:
			skipped++
			c.log.DebugContext(ctx, "skip malformed line",
				"kind", c.codec.Kind,
				"line", lineNo,
				"err", err,
			)
		default:
			items = append(items, item)
		}

		if readErr != nil {
			break
		}
	}

	if skipped > 0 && c.prom != nil {
		c.prom.SkippedLines.WithLabelValues(string(c.codec.Kind)).Add(float64(skipped))
	}
	return items, nil
}

// SaveAll replaces the backing file with items, one line each, in order.
// The records are written to a temporary file in the same directory which
// is renamed over the target only once fully written, so a failed save
// leaves the previous content in place.
func (c *Collection[T]) SaveAll(ctx context.Context, items []T) error {
	op := c.op("save_all")
	ctx, span := c.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("file.path", c.path),
		attribute.Int("records", len(items)),
	))
	defer span.End()

	err := c.observe(op, func() error {
		return c.save(ctx, items)
	})
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: save %s: %w", apperr.ErrIO, c.path, err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %w", apperr.ErrIO, dir, err)
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString(c.codec.Encode(item))
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %w", apperr.ErrIO, c.path, err)
	}
	tmpName := tmp.Name()

	fail := func(step string, err error) error {
		_ = tmp.Close()
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			c.log.WarnContext(ctx, "remove temp file", "path", tmpName, "err", rmErr)
		}
		return fmt.Errorf("%w: %s %s: %w", apperr.ErrIO, step, c.path, err)
	}

	if _, err := tmp.WriteString(b.String()); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Chmod(filePermissions); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("close", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return fail("replace", err)
	}

	c.log.DebugContext(ctx, "collection saved", "kind", c.codec.Kind, "records", len(items))
	return nil
}
