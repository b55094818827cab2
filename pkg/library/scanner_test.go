package library

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func testLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "Action/Shounen/Naruto/Naruto v1.cbz", make([]byte, 2048))
	writeFile(t, root, "Action/Shounen/Naruto/series.json",
		[]byte(`{"series": "NARUTO", "genres": ["Action", "Adventure"], "status": "Completed"}`))
	writeFile(t, root, "Action/Adult/Secret/Secret c1.cbz", make([]byte, 100))
	writeFile(t, root, "Action/Adult/Secret/series.yaml", []byte("series: Secret\nnsfw: true\n"))
	writeFile(t, root, "Manga/One Piece c1044.cbz", make([]byte, 100))
	writeFile(t, root, "Manga/notes.txt", []byte("not an archive"))
	return root
}

func TestScan(t *testing.T) {
	sc := &Scanner{Root: testLibrary(t)}
	items, err := sc.Scan()
	require.NoError(t, err)
	require.Len(t, items, 2)

	naruto := items[0]
	assert.Equal(t, "NARUTO", naruto.Series)
	assert.Equal(t, "Action", naruto.Category)
	assert.Equal(t, "Naruto v1.cbz", naruto.Filename)
	assert.Equal(t, []string{"Action", "Adventure"}, naruto.Genres)
	assert.Equal(t, "Completed", naruto.SeriesStatus)
	assert.Equal(t, "2.0 KB", naruto.SizeStr)
	assert.Len(t, naruto.ID, 32)
	require.NotNil(t, naruto.Volume)
	assert.Equal(t, 1.0, *naruto.Volume)
	assert.Nil(t, naruto.Chapter)

	onePiece := items[1]
	assert.Equal(t, "One Piece", onePiece.Series)
	assert.Equal(t, "Manga", onePiece.Category)
	require.NotNil(t, onePiece.Chapter)
	assert.Equal(t, 1044.0, *onePiece.Chapter)
}

func writeCBZ(t *testing.T, root, rel string, entries ...string) {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte("x"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	writeFile(t, root, rel, buf.Bytes())
}

func TestScanCountsPages(t *testing.T) {
	root := t.TempDir()
	writeCBZ(t, root, "Action/Naruto v1.cbz",
		"001.jpg", "002.png", "pages/003.jpeg",
		"info.txt", "__MACOSX/._001.jpg", ".hidden.jpg")
	writeFile(t, root, "Action/Berserk c1.cbr", make([]byte, 64))

	sc := &Scanner{Root: root}
	items, err := sc.Scan()
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Berserk", items[0].Series)
	assert.Equal(t, 0, items[0].Pages)
	assert.Equal(t, "Naruto", items[1].Series)
	assert.Equal(t, 3, items[1].Pages)
}

func TestScanCorruptArchiveStillListed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Action/Broken v1.cbz", []byte("not a zip"))

	sc := &Scanner{Root: root}
	items, err := sc.Scan()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Pages)
}

func TestScanNSFWFiltering(t *testing.T) {
	root := testLibrary(t)

	hidden := &Scanner{Root: root}
	items, err := hidden.Scan()
	require.NoError(t, err)
	for _, item := range items {
		assert.False(t, item.NSFW)
	}

	shown := &Scanner{Root: root, ShowNSFW: true}
	items, err = shown.Scan()
	require.NoError(t, err)
	require.Len(t, items, 3)

	var secret bool
	for _, item := range items {
		if item.Series == "Secret" {
			secret = true
			assert.True(t, item.NSFW)
		}
	}
	assert.True(t, secret)
}

func TestScanSidecarInheritsFromAncestor(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Action/series.yaml", []byte("status: Ongoing\ngenres: [Action]\n"))
	writeFile(t, root, "Action/Shounen/Naruto/Naruto v1.cbz", make([]byte, 100))

	sc := &Scanner{Root: root}
	items, err := sc.Scan()
	require.NoError(t, err)
	require.Len(t, items, 1)

	// The sidecar has no name of its own, so the folder name still wins.
	assert.Equal(t, "Naruto", items[0].Series)
	assert.Equal(t, "Ongoing", items[0].SeriesStatus)
	assert.Equal(t, []string{"Action"}, items[0].Genres)
}

func TestScanMissingRoot(t *testing.T) {
	sc := &Scanner{Root: filepath.Join(t.TempDir(), "missing")}
	_, err := sc.Scan()
	assert.Error(t, err)
}

func TestParseFilenameInfo(t *testing.T) {
	fp := func(v float64) *float64 { return &v }

	tests := []struct {
		filename string
		volume   *float64
		chapter  *float64
	}{
		{"Naruto v12.cbz", fp(12), nil},
		{"Vagabond vol. 5.cbz", fp(5), nil},
		{"Solo Leveling c110.5.cbz", nil, fp(110.5)},
		{"One Piece Chapter 1044.cbz", nil, fp(1044)},
		{"Attack on Titan v3 c12.cbz", fp(3), fp(12)},
		{"Berserk 363.cbz", nil, fp(363)},
		{"Oneshot.cbz", nil, nil},
	}

	for _, tt := range tests {
		vol, ch := parseFilenameInfo(tt.filename)
		assert.Equal(t, tt.volume, vol, "volume of %q", tt.filename)
		assert.Equal(t, tt.chapter, ch, "chapter of %q", tt.filename)
	}
}

func TestCleanSeriesName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"Naruto v12.cbz", "Naruto"},
		{"One Piece c1044.cbz", "One Piece"},
		{"Solo Leveling Chapter 110.cbr", "Solo Leveling"},
		{"Berserk 363.cbz", "Berserk 363"},
		{"Oneshot.cbz", "Oneshot"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanSeriesName(tt.filename), "input %q", tt.filename)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{47395635, "45.2 MB"},
		{1 << 30, "1.0 GB"},
		{1 << 42, "4.0 TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.bytes), "input %d", tt.bytes)
	}
}
