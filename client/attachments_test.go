package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileOfSize(name string, size int) Attachment {
	return Attachment{Filename: name, Data: bytes.Repeat([]byte{'x'}, size), MimeType: "application/octet-stream"}
}

func TestAddFilesAcceptsExactCeiling(t *testing.T) {
	list := NewAttachmentList(100)
	list.AddFiles(fileOfSize("exact.bin", 100))

	require.Len(t, list.Files(), 1)
	assert.Empty(t, list.Error())
}

func TestAddFilesRejectsOverCeiling(t *testing.T) {
	list := NewAttachmentList(100)
	list.AddFiles(fileOfSize("big.bin", 101))

	assert.Empty(t, list.Files())
	assert.NotEmpty(t, list.Error())
}

func TestAddFilesMixedSelectionKeepsFittingFiles(t *testing.T) {
	list := NewAttachmentList(100)
	list.AddFiles(
		fileOfSize("a.bin", 10),
		fileOfSize("too-big.bin", 200),
		fileOfSize("b.bin", 20),
	)

	files := list.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "a.bin", files[0].Filename)
	assert.Equal(t, "b.bin", files[1].Filename)
	assert.NotEmpty(t, list.Error())
}

func TestErrorReflectsOnlyLatestAdd(t *testing.T) {
	list := NewAttachmentList(100)
	list.AddFiles(fileOfSize("big.bin", 200))
	require.NotEmpty(t, list.Error())

	list.AddFiles(fileOfSize("ok.bin", 50))
	assert.Empty(t, list.Error(), "a fully successful add clears the previous error")
}

func TestRemoveFileKeepsOrder(t *testing.T) {
	list := NewAttachmentList(100)
	list.AddFiles(fileOfSize("a.bin", 1), fileOfSize("b.bin", 2), fileOfSize("c.bin", 3))

	list.RemoveFile(1)

	files := list.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "a.bin", files[0].Filename)
	assert.Equal(t, "c.bin", files[1].Filename)
}

func TestRemovingLastFileClearsError(t *testing.T) {
	list := NewAttachmentList(100)
	list.AddFiles(fileOfSize("ok.bin", 50), fileOfSize("big.bin", 200))
	require.NotEmpty(t, list.Error())

	list.RemoveFile(0)
	assert.Empty(t, list.Files())
	assert.Empty(t, list.Error())
}

func TestRemoveFileIgnoresBadIndex(t *testing.T) {
	list := NewAttachmentList(100)
	list.AddFiles(fileOfSize("a.bin", 1))

	list.RemoveFile(-1)
	list.RemoveFile(5)
	assert.Len(t, list.Files(), 1)
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.5 KB", FormatFileSize(1536))
	assert.Equal(t, "10.0 MB", FormatFileSize(10<<20))
}
