package taxonomy

import (
	"strings"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

// rootMarkers are scanned in order when the configured library root does not
// match an item's path. The match is against the last occurrence, so a path
// like /mnt/media/manga/Action/... resolves relative to /manga/.
var rootMarkers = []string{"/manga/", "/comics/", "/media/"}

// noiseSegments are path components that never carry taxonomy meaning.
var noiseSegments = map[string]bool{
	"ArrData": true,
	"media":   true,
	"comics":  true,
	"manga":   true,
}

func isArchiveName(segment string) bool {
	lower := strings.ToLower(segment)
	return strings.HasSuffix(lower, ".cbz") || strings.HasSuffix(lower, ".cbr")
}

// Classify maps an item's raw filesystem path to its taxonomy segments
// relative to the library root. Matching is case-insensitive but the returned
// segments keep their original case. Malformed input never fails; it yields an
// empty or minimal segment list instead.
func Classify(item models.Item, libraryRoot string) []string {
	path := strings.ReplaceAll(item.Path, "\\", "/")
	lower := strings.ToLower(path)

	rel := ""
	if libraryRoot != "" {
		root := strings.ToLower(strings.ReplaceAll(libraryRoot, "\\", "/"))
		root = strings.TrimRight(root, "/")
		if root != "" {
			if idx := strings.Index(lower, root); idx >= 0 {
				rel = path[idx+len(root):]
			}
		}
	}
	if rel == "" {
		for _, marker := range rootMarkers {
			if idx := strings.LastIndex(lower, marker); idx >= 0 {
				rel = path[idx+len(marker):]
				break
			}
		}
	}

	// No usable root, or the relative part still looks like an absolute
	// Windows path: fall back to splitting the whole path and dropping
	// whatever cannot be a taxonomy segment.
	if rel == "" || strings.Contains(rel, ":/") {
		var segments []string
		for _, seg := range strings.Split(path, "/") {
			if seg == "" || strings.Contains(seg, ":") || noiseSegments[seg] {
				continue
			}
			segments = append(segments, seg)
		}
		return dropTrailingArchive(segments)
	}

	rel = strings.Trim(rel, "/")
	var segments []string
	for _, seg := range strings.Split(rel, "/") {
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
	}
	return dropTrailingArchive(segments)
}

// dropTrailingArchive removes the final segment when it is the item's own
// archive filename. Only the last segment is a candidate; a directory that
// happens to carry an archive suffix stays a folder.
func dropTrailingArchive(segments []string) []string {
	if n := len(segments); n > 0 && isArchiveName(segments[n-1]) {
		segments = segments[:n-1]
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}
