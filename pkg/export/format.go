package export

// Format is an export target.
type Format string

// Supported formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
	FormatCopy Format = "copy"
)

// MIME types of the downloadable formats.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain; charset=utf-8"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatPDF, FormatDOCX, FormatText, FormatCopy}
}

// ParseFormat converts s into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPDF, FormatDOCX, FormatText, FormatCopy:
		return f, nil
	case "text":
		return FormatText, nil
	}
	return "", ErrUnknownFormat
}

// Ext returns the file extension without the dot. FormatCopy has none.
func (f Format) Ext() string {
	if f == FormatCopy {
		return ""
	}
	return string(f)
}

// MIME returns the content type of the downloaded file.
func (f Format) MIME() string {
	switch f {
	case FormatPDF:
		return MIMEPDF
	case FormatDOCX:
		return MIMEDOCX
	case FormatText, FormatCopy:
		return MIMEText
	}
	return "application/octet-stream"
}

// Label is the user-facing name of the format.
func (f Format) Label() string {
	switch f {
	case FormatPDF:
		return "PDF"
	case FormatDOCX:
		return "Word document"
	case FormatText:
		return "Text file"
	case FormatCopy:
		return "Clipboard"
	}
	return string(f)
}

// SuccessMessage is shown after a successful export.
func (f Format) SuccessMessage() string {
	switch f {
	case FormatPDF:
		return "PDF downloaded successfully!"
	case FormatDOCX:
		return "Word document downloaded successfully!"
	case FormatText:
		return "Text file downloaded successfully!"
	case FormatCopy:
		return "Letter copied to clipboard!"
	}
	return "Done!"
}

func (f Format) failureMessage() string {
	switch f {
	case FormatPDF:
		return "Failed to generate PDF. Please try again."
	case FormatDOCX:
		return "Failed to generate Word document. Please try again."
	case FormatText:
		return "Failed to generate text file. Please try again."
	case FormatCopy:
		return "Failed to copy to clipboard. Please try again."
	}
	return "Download failed. Please try again."
}
