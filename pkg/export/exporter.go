package export

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/letter"
)

// Request describes one export.
type Request struct {
	Template *catalog.Template
	// Scope identifies the client for in-progress tracking.
	Scope  string
	Format Format
	Data   letter.Data
}

// Result describes a delivered export.
type Result struct {
	ID       string
	FileName string
	Format   Format
	Size     int
}

// Exporter runs the export pipeline.
type Exporter struct {
	guard      *Guard
	logger     *slog.Logger
	pdfLayout  PDFLayout
	docxLayout DOCXLayout
	letterOpts []letter.Option
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithGuard shares a guard between exporters.
func WithGuard(g *Guard) Option {
	return func(e *Exporter) {
		if g != nil {
			e.guard = g
		}
	}
}

// WithLogger sets the logger used for failed exports.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithLetterOptions sets the clock and location used for rendering and for
// the date printed on documents.
func WithLetterOptions(opts ...letter.Option) Option {
	return func(e *Exporter) {
		e.letterOpts = append(e.letterOpts, opts...)
	}
}

// WithPDFLayout overrides DefaultPDFLayout.
func WithPDFLayout(l PDFLayout) Option {
	return func(e *Exporter) {
		e.pdfLayout = l
	}
}

// WithDOCXLayout overrides DefaultDOCXLayout.
func WithDOCXLayout(l DOCXLayout) Option {
	return func(e *Exporter) {
		e.docxLayout = l
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		guard:      NewGuard(),
		logger:     slog.Default(),
		pdfLayout:  DefaultPDFLayout,
		docxLayout: DefaultDOCXLayout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Guard returns the in-progress tracker.
func (e *Exporter) Guard() *Guard {
	return e.guard
}

// Document renders the letter of tpl with data, stamped with today's date.
func (e *Exporter) Document(tpl catalog.Template, data letter.Data) Document {
	return Document{
		Body:   letter.Render(tpl.Body, data, e.letterOpts...),
		Date:   letter.TodayLong(e.letterOpts...),
		Author: data.EmployeeName,
	}
}

// Export runs the pipeline for req and delivers the result through d.
func (e *Exporter) Export(ctx context.Context, req Request, d Deliverer) (Result, error) {
	f, err := ParseFormat(string(req.Format))
	if err != nil {
		return Result{}, err
	}
	req.Format = f

	if err := e.guard.Begin(req.Scope, req.Format); err != nil {
		return Result{}, err
	}
	defer e.guard.End(req.Scope, req.Format)

	if err := ValidateReadiness(req.Template, req.Data).Err(); err != nil {
		return Result{}, err
	}

	doc := e.Document(*req.Template, req.Data)
	res := Result{ID: uuid.NewString(), Format: req.Format}

	if req.Format == FormatCopy {
		text := PlainText(doc)
		if err := d.Clipboard(ctx, text); err != nil {
			return Result{}, e.fail(ctx, req, err)
		}
		res.Size = len(text)
		return res, nil
	}

	data, err := e.serialize(req.Format, doc)
	if err != nil {
		return Result{}, e.fail(ctx, req, err)
	}

	res.FileName = FileName(req.Data.EmployeeName, req.Format.Ext())
	res.Size = len(data)

	if err := d.Download(ctx, Download{ID: res.ID, FileName: res.FileName, MIME: req.Format.MIME(), Data: data}); err != nil {
		return Result{}, e.fail(ctx, req, err)
	}

	e.logger.InfoContext(ctx, "letter exported",
		slog.String("export_id", res.ID),
		slog.String("format", string(req.Format)),
		slog.String("template", req.Template.ID),
		slog.Int("size", res.Size),
	)

	return res, nil
}

// Serialize produces the bytes of a downloadable format.
func (e *Exporter) Serialize(f Format, doc Document) ([]byte, error) {
	data, err := e.serialize(f, doc)
	if err != nil {
		return nil, failure(f, err)
	}
	return data, nil
}

func (e *Exporter) serialize(f Format, doc Document) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case FormatPDF:
		if err := WritePDF(&buf, doc, e.pdfLayout); err != nil {
			return nil, err
		}
	case FormatDOCX:
		if err := WriteDOCX(&buf, doc, e.docxLayout); err != nil {
			return nil, err
		}
	case FormatText, FormatCopy:
		buf.WriteString(PlainText(doc))
	default:
		return nil, ErrUnknownFormat
	}
	return buf.Bytes(), nil
}

func (e *Exporter) fail(ctx context.Context, req Request, err error) error {
	e.logger.ErrorContext(ctx, "letter export failed",
		slog.String("format", string(req.Format)),
		slog.Any("error", err),
	)
	return failure(req.Format, err)
}
