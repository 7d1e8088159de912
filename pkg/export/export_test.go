package export_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/letter"
)

var fixedNow = time.Date(2025, time.January, 20, 15, 4, 5, 0, time.UTC)

func pinned() []letter.Option {
	return []letter.Option{
		letter.WithClock(func() time.Time { return fixedNow }),
		letter.WithLocation(time.UTC),
	}
}

func readyData() letter.Data {
	return letter.Data{
		EmployeeName:     "John Doe",
		EmployeePosition: "Software Engineer",
		CompanyName:      "Tech Corp",
		SupervisorName:   "Jane Smith",
		LastWorkingDate:  "2025-02-15",
		ResignationDate:  "2025-02-01",
	}
}

func standardTemplate() *catalog.Template {
	tpl, err := catalog.Get("standard-resignation")
	if err != nil {
		panic(err)
	}
	return &tpl
}

// recorder is an in-memory Deliverer.
type recorder struct {
	mu        sync.Mutex
	downloads []export.Download
	clipboard []string

	downloadErr  error
	clipboardErr error
	// block, when set, is waited on inside Download.
	block chan struct{}
}

func (r *recorder) Download(ctx context.Context, d export.Download) error {
	if r.block != nil {
		<-r.block
	}
	if r.downloadErr != nil {
		return r.downloadErr
	}
	r.mu.Lock()
	r.downloads = append(r.downloads, d)
	r.mu.Unlock()
	return nil
}

func (r *recorder) Clipboard(ctx context.Context, text string) error {
	if r.clipboardErr != nil {
		return r.clipboardErr
	}
	r.mu.Lock()
	r.clipboard = append(r.clipboard, text)
	r.mu.Unlock()
	return nil
}

// fakeClipboard is a scripted ClipboardWriter.
type fakeClipboard struct {
	available bool
	err       error
	written   []string
}

func (f *fakeClipboard) Available() bool { return f.available }

func (f *fakeClipboard) WriteText(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

var errBoom = errors.New("boom")
