package sbx

import (
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/soundbox-flash/ds"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/sentry"
)

// Extract returns the content of every file entry of archive, stripped of padding.
// Directory and unknown entries are skipped.
func Extract(archive Archive) []File {
	return lo.FilterMap(
		archive.Entries,
		func(result Result, _ int) (File, bool) {
			entry := result.Entry
			if entry.Kind != sentry.KindFile {
				return File{}, false
			}
			content := sentry.Span(archive.Data, uint64(entry.Offset), uint64(entry.Size))
			return File{
				Name:    entry.Name,
				Content: ds.ShallowCopy(content),
			}, true
		},
	)
}
