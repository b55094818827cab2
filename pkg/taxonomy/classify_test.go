package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		libraryRoot string
		want        []string
	}{
		{
			name:        "configured root",
			path:        "/srv/library/Action/Shounen/Naruto/Naruto v1.cbz",
			libraryRoot: "/srv/library",
			want:        []string{"Action", "Shounen", "Naruto"},
		},
		{
			name:        "configured root matches case-insensitively",
			path:        "/SRV/Library/Action/Berserk.cbz",
			libraryRoot: "/srv/library",
			want:        []string{"Action"},
		},
		{
			name:        "configured root with trailing slash",
			path:        "/srv/library/Action/Seinen/Vagabond/v1.cbz",
			libraryRoot: "/srv/library/",
			want:        []string{"Action", "Seinen", "Vagabond"},
		},
		{
			name: "marker fallback",
			path: "/mnt/storage/manga/Action/Shounen/file.cbz",
			want: []string{"Action", "Shounen"},
		},
		{
			name: "marker uses last occurrence",
			path: "/manga/backup/manga/Action/Solo Leveling/c1.cbz",
			want: []string{"Action", "Solo Leveling"},
		},
		{
			name: "windows separators normalized before matching",
			path: `D:\stuff\media\Library\DC\Batman 404.cbz`,
			want: []string{"Library", "DC"},
		},
		{
			name: "drive letter fallback drops noise segments",
			path: `C:\Books\ArrData\Action\Hero 1.cbz`,
			want: []string{"Books", "Action"},
		},
		{
			name: "nothing usable yields no segments",
			path: "manga/file.cbz",
			want: nil,
		},
		{
			name:        "trailing archive filename is dropped",
			path:        "/srv/library/Action/OnePiece.CBR",
			libraryRoot: "/srv/library",
			want:        []string{"Action"},
		},
		{
			name:        "archive-suffixed directory stays a folder",
			path:        "/srv/library/Action/Collection.cbz/Title v1.cbz",
			libraryRoot: "/srv/library",
			want:        []string{"Action", "Collection.cbz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(models.Item{Path: tt.path}, tt.libraryRoot)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyKeepsOriginalCase(t *testing.T) {
	item := models.Item{Path: "/srv/Library/ACTION/ShouNen/Title/x.cbz"}
	got := Classify(item, "/srv/library")
	assert.Equal(t, []string{"ACTION", "ShouNen", "Title"}, got)
}
