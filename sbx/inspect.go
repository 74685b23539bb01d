package sbx

import (
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/sentry"
)

type (
	checksumPair struct {
		header  uint16
		payload uint16
	}
)

// DuplicateChecksumPairs returns the indexes of the entries whose header and payload
// checksums are both equal to those of an earlier entry.
func DuplicateChecksumPairs(entries []sentry.Entry) []int {
	seen := make(map[checksumPair]struct{}, len(entries))
	duplicates := make([]int, 0)
	for index, entry := range entries {
		pair := checksumPair{
			header:  entry.HeaderChecksum,
			payload: entry.PayloadChecksum,
		}
		if _, ok := seen[pair]; ok {
			duplicates = append(duplicates, index)
			continue
		}
		seen[pair] = struct{}{}
	}
	return duplicates
}

func Entries(results []Result) []sentry.Entry {
	return lo.Map(
		results,
		func(result Result, _ int) sentry.Entry {
			return result.Entry
		},
	)
}
