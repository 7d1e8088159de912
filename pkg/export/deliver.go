package export

import "context"

// Download is a generated file waiting to be delivered.
type Download struct {
	// ID is the export id, also returned in Result.
	ID       string
	FileName string
	MIME     string
	Data     []byte
}

// Deliverer hands export results to the user: either as a file download or
// as text written to a clipboard.
type Deliverer interface {
	Download(ctx context.Context, d Download) error
	Clipboard(ctx context.Context, text string) error
}
