package calc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"daon_interior/internal/domain/entities"
)

// Estimate serial numbers are human-readable: E{YYYYMMDD}-{seq:3} for the
// original document and E{YYYYMMDD}-{seq:3}-{rev:2} for revisions.

var serialPattern = regexp.MustCompile(`^E(\d{8})-(\d{3})(?:-(\d{2}))?$`)

// FormatSerial builds the serial for the given date and daily sequence.
func FormatSerial(t time.Time, seq int) string {
	return fmt.Sprintf("E%s-%03d", t.Format("20060102"), seq)
}

// FormatRevision appends a revision counter to a base serial.
func FormatRevision(base string, rev int) string {
	return fmt.Sprintf("%s-%02d", base, rev)
}

// ParseSerial splits a serial into its date, sequence and revision parts.
// rev is 0 for an unrevised document.
func ParseSerial(s string) (date string, seq, rev int, ok bool) {
	m := serialPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", 0, 0, false
	}
	seq, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		rev, _ = strconv.Atoi(m[3])
	}
	return m[1], seq, rev, true
}

// NextSerial returns the next unused serial for the given day, scanning the
// existing numbers for the highest sequence.
func NextSerial(existing []string, now time.Time) string {
	date := now.Format("20060102")
	max := 0
	for _, s := range existing {
		d, seq, _, ok := ParseSerial(s)
		if ok && d == date && seq > max {
			max = seq
		}
	}
	return FormatSerial(now, max+1)
}

// NextRevision returns the next revision serial for a base number. The base
// may itself be a revision; its revision suffix is stripped first.
func NextRevision(base string, existing []string) string {
	date, seq, _, ok := ParseSerial(base)
	if !ok {
		return ""
	}
	root := fmt.Sprintf("E%s-%03d", date, seq)
	max := 0
	for _, s := range existing {
		d, q, rev, ok := ParseSerial(s)
		if ok && d == date && q == seq && rev > max {
			max = rev
		}
	}
	return FormatRevision(root, max+1)
}

// Reconcile collapses duplicate documents sharing a serial number, keeping
// the one with the latest SavedAt. First-seen order is preserved.
func Reconcile(estimates []entities.Estimate) []entities.Estimate {
	index := make(map[string]int, len(estimates))
	out := make([]entities.Estimate, 0, len(estimates))
	for _, e := range estimates {
		if i, seen := index[e.Number]; seen {
			if e.SavedAt.After(out[i].SavedAt) {
				out[i] = e
			}
			continue
		}
		index[e.Number] = len(out)
		out = append(out, e)
	}
	return out
}
