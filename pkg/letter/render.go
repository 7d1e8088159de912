package letter

import "strings"

// Fallback labels shown for blank fields.
const (
	PlaceholderEmployeeName     = "[Your Name]"
	PlaceholderEmployeePosition = "[Your Position]"
	PlaceholderCompanyName      = "[Company Name]"
	PlaceholderSupervisorName   = "[Supervisor Name]"
	PlaceholderLastWorkingDate  = "[Last Working Date]"
)

// removed marks the position of a dropped conditional until line cleanup.
const removed = "\x00"

var fallbacks = map[Field]string{
	FieldEmployeeName:     PlaceholderEmployeeName,
	FieldEmployeePosition: PlaceholderEmployeePosition,
	FieldCompanyName:      PlaceholderCompanyName,
	FieldSupervisorName:   PlaceholderSupervisorName,
}

// Render interpolates body with data. The result never contains a tag for a
// known field.
func Render(body string, data Data, opts ...Option) string {
	r := renderer{data: sanitizeData(data), opts: newOptions(opts)}

	var b strings.Builder
	b.Grow(len(body))
	r.write(&b, parse(lex(body)))

	return collapse(b.String())
}

type renderer struct {
	data Data
	opts options
}

func (r renderer) write(b *strings.Builder, nodes []*node) {
	for _, n := range nodes {
		switch n.kind {
		case nodeText:
			b.WriteString(n.raw)
		case nodeVar:
			b.WriteString(r.value(n))
		case nodeIf:
			if r.data.Present(n.name) {
				r.write(b, n.children)
			} else {
				b.WriteString(removed)
			}
		}
	}
}

func (r renderer) value(n *node) string {
	switch n.name {
	case FieldEmployeeName, FieldEmployeePosition, FieldCompanyName, FieldSupervisorName:
		if r.data.Present(n.name) {
			return r.data.Get(n.name)
		}
		return fallbacks[n.name]
	case FieldLastWorkingDate:
		if !r.data.Present(FieldLastWorkingDate) {
			return PlaceholderLastWorkingDate
		}
		return FormatDate(r.data.LastWorkingDate, withOptions(r.opts))
	case FieldResignationDate:
		if !r.data.Present(FieldResignationDate) {
			return r.opts.today().Format(LongDateLayout)
		}
		return FormatDate(r.data.ResignationDate, withOptions(r.opts))
	case FieldReason, FieldCustomMessage:
		return r.data.Get(n.name)
	}
	return n.raw
}

// collapse deletes lines that held nothing but dropped conditionals. When such
// a line sat between two blank lines (or at an edge next to one), one of the
// blank lines goes too, keeping paragraph spacing single.
func collapse(s string) string {
	if !strings.Contains(s, removed) {
		return s
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.Contains(line, removed) {
			out = append(out, line)
			continue
		}

		rest := strings.ReplaceAll(line, removed, "")
		if strings.TrimSpace(rest) != "" {
			out = append(out, rest)
			continue
		}

		prevBlank := len(out) == 0 || isBlank(out[len(out)-1])
		nextBlank := i+1 >= len(lines) || isBlank(lines[i+1])
		if !prevBlank || !nextBlank {
			continue
		}
		switch {
		case i+1 < len(lines):
			i++
		case len(out) > 0:
			out = out[:len(out)-1]
		}
	}

	return strings.Join(out, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// sanitizeData strips the internal marker from user input.
func sanitizeData(d Data) Data {
	for _, f := range Fields {
		if v := d.Get(f); strings.Contains(v, removed) {
			d.Set(f, strings.ReplaceAll(v, removed, ""))
		}
	}
	return d
}

func withOptions(o options) Option {
	return func(dst *options) { *dst = o }
}
