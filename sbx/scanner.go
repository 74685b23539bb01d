package sbx

import (
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/lbytes"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/sentry"
)

// Scanner walks the entry table of an archive one slot at a time.
// It stops after the entry carrying sentry.MarkerLast, at the last complete slot,
// or at the first slot that cannot be decoded. A Scanner cannot be restarted.
type Scanner struct {
	reader *lbytes.Reader
	entry  sentry.Entry
	slots  int
	err    error
	done   bool
}

func NewScanner(data []byte) *Scanner {
	return &Scanner{
		reader: lbytes.NewBytesReader(data),
	}
}

func (r *Scanner) Scan() bool {
	if r.done || r.reader.Len() < sentry.DefaultEntrySize {
		r.done = true
		return false
	}
	bs, err := r.reader.ReadBytes(sentry.DefaultEntrySize)
	if err != nil {
		r.err = errors.Wrapf(err, "Scanner.Scan error reading slot %d", r.slots)
		r.done = true
		return false
	}
	entry, err := sentry.Decode(bs)
	if err != nil {
		r.err = errors.Wrapf(err, "Scanner.Scan error decoding slot %d", r.slots)
		r.done = true
		return false
	}
	r.entry = *entry
	r.slots++
	r.done = entry.IsLast()
	return true
}

func (r *Scanner) Entry() sentry.Entry {
	return r.entry
}

func (r *Scanner) Err() error {
	return r.err
}

// Slots returns the number of slots consumed so far.
func (r *Scanner) Slots() int {
	return r.slots
}

// CollectEntries drains a Scanner over data.
func CollectEntries(data []byte) ([]sentry.Entry, error) {
	scanner := NewScanner(data)
	entries := make([]sentry.Entry, 0)
	for scanner.Scan() {
		entries = append(entries, scanner.Entry())
	}
	if err := scanner.Err(); err != nil {
		err := errors.Wrap(err, "CollectEntries error")
		return nil, err
	}
	return entries, nil
}
