package diag

import "sort"

// Bag accumulates diagnostics up to a fixed cap, matching §2.1 of
// SPEC_FULL.md: every pass reports through a Bag rather than writing
// straight to stderr, so the driver can render, sort, or serialize the
// whole run's findings at once.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a Bag that accepts at most max diagnostics; additional
// reports are silently dropped (Add returns false).
func NewBag(max int) *Bag {
	return &Bag{items: make([]Diagnostic, 0, max), max: max}
}

// Add appends d, returning false if the Bag's cap has already been reached.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int { return b.max }

func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any diagnostic has at least SevError severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns the accumulated diagnostics. The caller must not mutate the
// returned slice; it aliases the Bag's internal storage.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics deterministically by file, start offset, end
// offset, severity (descending), then code, so two runs over the same
// source produce byte-identical rendered output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
