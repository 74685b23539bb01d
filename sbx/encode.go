package sbx

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/soundbox-flash/ds"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/lbytes"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/scrc"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/sentry"
	"golang.org/x/exp/slices"
)

// SortFiles returns a copy of files ordered by name, which is the order the
// original flashing tool lays files out in.
func SortFiles(files []File) []File {
	sorted := ds.ShallowCopy(files)
	slices.SortFunc(
		sorted,
		func(a File, b File) bool {
			return a.Name < b.Name
		},
	)
	return sorted
}

func ValidateFiles(files []File) error {
	seen := make(map[string]struct{}, len(files))
	for index, file := range files {
		if err := sentry.ValidateName(file.Name); err != nil {
			err := errors.Wrapf(err, "ValidateFiles error: file %d", index)
			return err
		}
		if _, ok := seen[file.Name]; ok {
			err := errors.Wrapf(ErrDuplicateName, `ValidateFiles error: file %d "%s"`, index, file.Name)
			return err
		}
		seen[file.Name] = struct{}{}
	}
	return nil
}

// CalculateArchiveSize returns the size of the archive that Encode produces for files.
func CalculateArchiveSize(files []File) int {
	tableSize := (len(files) + 1) * sentry.DefaultEntrySize
	return lo.Reduce(
		files,
		func(size int, file File, _ int) int {
			return size + ds.NearestDivisibleByM(len(file.Content), PayloadAlignment)
		},
		tableSize,
	)
}

// Encode builds an archive holding files, in the given order, under a directory
// entry named directoryName. Names are validated before anything is built.
func Encode(files []File, directoryName string) ([]byte, error) {
	if err := sentry.ValidateName(directoryName); err != nil {
		err := errors.Wrap(err, "Encode error: invalid directory name")
		return nil, err
	}
	if err := ValidateFiles(files); err != nil {
		err := errors.Wrap(err, "Encode error")
		return nil, err
	}
	archiveSize := CalculateArchiveSize(files)
	if uint64(archiveSize) > math.MaxUint32 {
		err := errors.Wrapf(ErrArchiveTooLarge, "Encode error: %d bytes", archiveSize)
		return nil, err
	}

	numSlots := len(files) + 1
	offset := numSlots * sentry.DefaultEntrySize
	headers := make([]byte, 0, len(files)*sentry.DefaultEntrySize)
	payload := make([]byte, 0, archiveSize-offset)
	for index, file := range files {
		paddedSize := ds.NearestDivisibleByM(len(file.Content), PayloadAlignment)
		entry := sentry.Seal(
			sentry.Entry{
				PayloadChecksum: scrc.Checksum(file.Content),
				Offset:          uint32(offset),
				Size:            uint32(len(file.Content)),
				Tag:             sentry.TagFile,
				Marker:          lo.Ternary(index == len(files)-1, sentry.MarkerLast, sentry.MarkerMore),
				Name:            file.Name,
			},
		)
		headers = append(headers, sentry.Encode(entry)...)
		payload = append(payload, lbytes.PadRight(file.Content, paddedSize, sentry.FillByte)...)
		offset += paddedSize
	}

	// the directory covers every byte after its own slot
	directoryDomain := make([]byte, 0, len(headers)+len(payload))
	directoryDomain = append(directoryDomain, headers...)
	directoryDomain = append(directoryDomain, payload...)
	directory := sentry.Seal(
		sentry.Entry{
			PayloadChecksum: scrc.Checksum(directoryDomain),
			Offset:          DirectoryOffset,
			Size:            uint32(archiveSize),
			Tag:             sentry.TagDirectory,
			Marker:          sentry.MarkerMore,
			Name:            directoryName,
		},
	)

	archive := make([]byte, 0, archiveSize)
	archive = append(archive, sentry.Encode(directory)...)
	archive = append(archive, directoryDomain...)
	if len(archive) != archiveSize {
		return nil, ds.ErrUnreachableCode{Caller: "sbx.Encode"}
	}

	return archive, nil
}
