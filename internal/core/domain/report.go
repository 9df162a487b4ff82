package domain

// NoOriginsNotice is reported when a list call succeeds with nothing allowed.
const NoOriginsNotice = "Looks like there's no URLs whitelisted."

// LineKind distinguishes the entries of a Report.
type LineKind int

// Report line kinds.
const (
	// LineOutcome carries an Outcome.
	LineOutcome LineKind = iota

	// LineOrigin carries one allowed origin domain from a list call.
	LineOrigin

	// LineNotice carries an informational message.
	LineNotice
)

// ReportLine is one entry of a Report.
type ReportLine struct {
	Kind    LineKind
	Outcome *Outcome
	Text    string
}

// Report is the ordered result of a whitelist run.
type Report struct {
	Mode  Mode
	Lines []ReportLine
}

// NewReport creates an empty report for mode.
func NewReport(mode Mode) *Report {
	return &Report{Mode: mode}
}

// AddOutcome appends an outcome line.
func (r *Report) AddOutcome(o Outcome) {
	r.Lines = append(r.Lines, ReportLine{Kind: LineOutcome, Outcome: &o, Text: o.Message})
}

// AddOrigin appends a listed origin line.
func (r *Report) AddOrigin(domain string) {
	r.Lines = append(r.Lines, ReportLine{Kind: LineOrigin, Text: domain})
}

// AddNotice appends a notice line.
func (r *Report) AddNotice(text string) {
	r.Lines = append(r.Lines, ReportLine{Kind: LineNotice, Text: text})
}

// Outcomes returns the outcomes in report order.
func (r *Report) Outcomes() []Outcome {
	var out []Outcome
	for _, l := range r.Lines {
		if l.Kind == LineOutcome {
			out = append(out, *l.Outcome)
		}
	}
	return out
}

// Origins returns the listed origin domains in report order.
func (r *Report) Origins() []string {
	var out []string
	for _, l := range r.Lines {
		if l.Kind == LineOrigin {
			out = append(out, l.Text)
		}
	}
	return out
}

// FailureCount returns how many outcomes did not succeed.
func (r *Report) FailureCount() int {
	n := 0
	for _, o := range r.Outcomes() {
		if !o.Succeeded() {
			n++
		}
	}
	return n
}
