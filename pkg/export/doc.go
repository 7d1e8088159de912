// Package export turns a rendered resignation letter into downloadable
// documents and clipboard text.
//
// Every export runs the same pipeline:
//
//  1. the per-format [Guard] rejects a second export of the same format for
//     the same client while one is in progress;
//  2. [ValidateReadiness] checks that a template is selected and every
//     required field is filled, collecting all missing-field messages;
//  3. the letter is rendered and serialized to PDF, DOCX or plain text;
//  4. the result is handed to a [Deliverer], which either triggers a download
//     or writes the text to a clipboard.
//
// Typical use:
//
//	exp := export.New(export.WithLogger(log), export.WithLetterOptions(letter.WithLocation(loc)))
//	res, err := exp.Export(ctx, export.Request{
//		Scope:    clientID,
//		Format:   export.FormatPDF,
//		Template: &tpl,
//		Data:     data,
//	}, deliverer)
//
// # Errors
//
// A failed precondition returns a [*ReadinessError] (errors.Is ErrNotReady).
// A failing serializer or deliverer is logged and returned as an [*Error]
// whose message is safe to show to users. [ErrExportInProgress] signals a
// rejected re-entrant call. Nothing is retried.
//
// # Delivery
//
// [FileDeliverer] writes downloads to a directory and copies text through a
// [ClipboardWriter]. [Fallback] chains a primary clipboard with a legacy one,
// so copying still succeeds when the system clipboard is unavailable: the
// command-line tool pairs [SystemClipboard] with [OSC52], the terminal escape
// sequence understood by most terminal emulators.
package export
