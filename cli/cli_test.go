package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/soundbox-flash/sbx"
	"gopkg.in/yaml.v3"
)

func init() {
	if err := SetupLogger("error", io.Discard); err != nil {
		panic(err)
	}
}

func createSourceFolder(t *testing.T) string {
	folder := filepath.Join(t.TempDir(), "test_dir")
	require.NoError(t, os.MkdirAll(filepath.Join(folder, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "b.bin"), bytes.Repeat([]byte{0xAA}, 20), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "a.bin"), []byte{0x01, 0x02, 0x03}, 0644))
	return folder
}

func createArchiveFile(t *testing.T) string {
	output := filepath.Join(t.TempDir(), "flash.bin")
	require.NoError(t, StartPacking(PackCmd{Input: createSourceFolder(t), Output: output}))
	return output
}

func TestStartPacking(t *testing.T) {
	output := createArchiveFile(t)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Len(t, data, 144)

	archive, err := sbx.Decode(data)
	require.NoError(t, err)
	require.Len(t, archive.Entries, 3)
	assert.Equal(t, "test_dir", archive.Entries[0].Entry.Name)
	assert.Equal(t, "a.bin", archive.Entries[1].Entry.Name)
	assert.Equal(t, "b.bin", archive.Entries[2].Entry.Name)
}

func TestStartPacking_RefusesToOverwrite(t *testing.T) {
	output := createArchiveFile(t)

	err := StartPacking(PackCmd{Input: createSourceFolder(t), Output: output, Name: "other"})
	assert.True(t, errors.Is(err, ErrDestinationExists))

	err = StartPacking(PackCmd{Input: createSourceFolder(t), Output: output, Name: "other", Force: true})
	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	archive, err := sbx.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "other", archive.Entries[0].Entry.Name)
}

func TestStartExtracting(t *testing.T) {
	archivePath := createArchiveFile(t)
	output := filepath.Join(t.TempDir(), "soundbox")

	require.NoError(t, StartExtracting(ExtractCmd{Archive: archivePath, Output: output}))

	a, err := os.ReadFile(filepath.Join(output, "a.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, a)
	b, err := os.ReadFile(filepath.Join(output, "b.bin"))
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 20), b)

	err = StartExtracting(ExtractCmd{Archive: archivePath, Output: output})
	assert.True(t, errors.Is(err, ErrDestinationExists))
	require.NoError(t, StartExtracting(ExtractCmd{Archive: archivePath, Output: output, Force: true}))
}

func TestStartExtracting_CorruptedArchive(t *testing.T) {
	archivePath := createArchiveFile(t)
	data, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	data[130] ^= 0x01
	require.NoError(t, os.WriteFile(archivePath, data, 0644))
	output := filepath.Join(t.TempDir(), "soundbox")

	err = StartExtracting(ExtractCmd{Archive: archivePath, Output: output})
	assert.True(t, errors.Is(err, sbx.ErrPayloadChecksumMismatch))
	assert.False(t, CheckExistence(output))
}

func TestStartListing(t *testing.T) {
	archivePath := createArchiveFile(t)
	out := &bytes.Buffer{}

	require.NoError(t, StartListing(ListCmd{Archive: archivePath, Format: FormatText}, out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Entry 1: HeaderCRC=0x"))
	assert.Contains(t, lines[0], "Offset=32, Size=144, Type=directory, Name=test_dir, Header CRC OK, Data CRC OK")
	assert.Contains(t, lines[1], "Offset=96, Size=3, Type=file, Name=a.bin")
	assert.Contains(t, lines[2], "Offset=112, Size=20, Type=file, Name=b.bin")
}

func TestStartListing_Mismatch(t *testing.T) {
	archivePath := createArchiveFile(t)
	data, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	data[96] ^= 0x80
	require.NoError(t, os.WriteFile(archivePath, data, 0644))
	out := &bytes.Buffer{}

	err = StartListing(ListCmd{Archive: archivePath, Format: FormatText}, out)
	assert.True(t, errors.Is(err, ErrVerificationFailed))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Data CRC Mismatch")
	assert.Contains(t, lines[1], "Header CRC OK, Data CRC Mismatch (Calculated CRC: 0x")
	assert.Contains(t, lines[2], "Data CRC OK")
}

func TestStartListing_JSON(t *testing.T) {
	archivePath := createArchiveFile(t)
	out := &bytes.Buffer{}

	require.NoError(t, StartListing(ListCmd{Archive: archivePath, Format: FormatJSON, Digest: true}, out))
	listed := make([]map[string]any, 0)
	require.NoError(t, json.Unmarshal(out.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, true, listed[0]["header_ok"])
	assert.NotContains(t, listed[0], "digest")
	assert.Equal(
		t,
		"sha256:039058c6f2c0cb492c533b0a4d14ef77cc0f78abccced5287d84a1a2011cfb81",
		listed[1]["digest"],
	)
	entry := listed[2]["entry"].(map[string]any)
	assert.Equal(t, "b.bin", entry["name"])
	assert.Equal(t, "file", entry["kind"])
}

func TestStartListing_YAML(t *testing.T) {
	archivePath := createArchiveFile(t)
	out := &bytes.Buffer{}

	require.NoError(t, StartListing(ListCmd{Archive: archivePath, Format: FormatYAML}, out))
	listed := make([]map[string]any, 0)
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, true, listed[2]["payload_ok"])
	entry := listed[0]["entry"].(map[string]any)
	assert.Equal(t, "test_dir", entry["name"])
	assert.Equal(t, 144, entry["size"])
}

func TestStartListing_UnknownFormat(t *testing.T) {
	archivePath := createArchiveFile(t)
	err := StartListing(ListCmd{Archive: archivePath, Format: "xml"}, io.Discard)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestIsSafeName(t *testing.T) {
	expectedValues := map[string]bool{
		"a.bin":       true,
		"café.mp3":    true,
		".":           false,
		"..":          false,
		"../escape":   false,
		"nested/file": false,
		"/etc/passwd": false,
	}
	for name, expected := range expectedValues {
		assert.Equalf(t, expected, IsSafeName(name), name)
	}
}

func TestSetupLogger(t *testing.T) {
	assert.Error(t, SetupLogger("loud", io.Discard))
	assert.NoError(t, SetupLogger("error", io.Discard))
}
