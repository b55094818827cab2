package library

import (
	"archive/zip"
	"crypto/md5"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

// sidecarNames are the per-folder metadata files the scanner recognizes. YAML
// is a superset of JSON, so one decoder covers the legacy series.json files
// and the YAML variants.
var sidecarNames = []string{"series.json", "series.yaml", "series.yml"}

// SeriesMeta is the sidecar metadata applied to every archive under the
// folder that carries it.
type SeriesMeta struct {
	Series string   `yaml:"series"`
	Title  string   `yaml:"title"`
	Genres []string `yaml:"genres"`
	Status string   `yaml:"status"`
	NSFW   bool     `yaml:"nsfw"`
}

// Name returns the series name the metadata prefers, if any.
func (m *SeriesMeta) Name() string {
	if m == nil {
		return ""
	}
	if m.Series != "" {
		return m.Series
	}
	return m.Title
}

// Scanner walks a library root and produces the flat item collection the
// taxonomy is built from.
type Scanner struct {
	Root     string
	ShowNSFW bool
	Log      *logrus.Logger
}

// Scan walks the library root and returns one item per comic archive found.
// Unreadable directories and malformed sidecars are logged and skipped; the
// scan itself only fails when the root cannot be walked at all.
func (sc *Scanner) Scan() ([]models.Item, error) {
	metaCache := make(map[string]*SeriesMeta)
	var items []models.Item

	err := filepath.WalkDir(sc.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == sc.Root {
				return err
			}
			sc.logf("skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() || !isArchive(d.Name()) {
			return nil
		}

		meta := sc.findMeta(filepath.Dir(path), metaCache)
		if meta != nil && meta.NSFW && !sc.ShowNSFW {
			return nil
		}

		item, err := sc.buildItem(path, d.Name(), meta)
		if err != nil {
			sc.logf("skipping %s: %v", path, err)
			return nil
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk library root: %w", err)
	}
	return items, nil
}

func (sc *Scanner) buildItem(path, filename string, meta *SeriesMeta) (models.Item, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.Item{}, err
	}

	rel, err := filepath.Rel(sc.Root, filepath.Dir(path))
	if err != nil || rel == "." {
		rel = ""
	}
	parts := splitPath(rel)

	category := "Uncategorized"
	if len(parts) > 0 {
		category = parts[0]
	}

	// Depth three or more means a dedicated series folder; shallower
	// layouts fall back to the cleaned filename.
	var series string
	if len(parts) >= 3 {
		series = parts[2]
	} else {
		series = cleanSeriesName(filename)
	}
	if name := meta.Name(); name != "" {
		series = name
	}

	vol, ch := parseFilenameInfo(filename)

	item := models.Item{
		ID:       fmt.Sprintf("%x", md5.Sum([]byte(path))),
		Path:     path,
		Title:    series,
		Series:   series,
		Category: category,
		Filename: filename,
		Volume:   vol,
		Chapter:  ch,
		Pages:    sc.countPages(path),
		SizeStr:  FormatSize(info.Size()),
	}
	if meta != nil {
		item.Genres = meta.Genres
		item.SeriesStatus = meta.Status
		item.NSFW = meta.NSFW
	}
	return item, nil
}

// findMeta resolves the nearest sidecar metadata for a directory, walking up
// toward the library root. Results (including misses) are cached per
// directory.
func (sc *Scanner) findMeta(dir string, cache map[string]*SeriesMeta) *SeriesMeta {
	if meta, ok := cache[dir]; ok {
		return meta
	}

	var meta *SeriesMeta
	for _, name := range sidecarNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var m SeriesMeta
		if err := yaml.Unmarshal(data, &m); err != nil {
			sc.logf("bad sidecar %s: %v", filepath.Join(dir, name), err)
			continue
		}
		meta = &m
		break
	}

	if meta == nil && strings.HasPrefix(dir, sc.Root) && dir != sc.Root {
		meta = sc.findMeta(filepath.Dir(dir), cache)
	}

	cache[dir] = meta
	return meta
}

func (sc *Scanner) logf(format string, args ...any) {
	if sc.Log != nil {
		sc.Log.Debugf(format, args...)
	}
}

func isArchive(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".cbz") || strings.HasSuffix(lower, ".cbr")
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// countPages counts the image entries inside a .cbz archive. Rar-based .cbr
// files and unreadable archives yield zero; the item is still listed, it just
// carries no page total.
func (sc *Scanner) countPages(path string) int {
	if !strings.HasSuffix(strings.ToLower(path), ".cbz") {
		return 0
	}
	r, err := zip.OpenReader(path)
	if err != nil {
		sc.logf("cannot read archive %s: %v", path, err)
		return 0
	}
	defer r.Close()

	pages := 0
	for _, f := range r.File {
		if isPageEntry(f.Name) {
			pages++
		}
	}
	return pages
}

// isPageEntry reports whether an archive entry is a comic page: an image file
// that is not macOS resource-fork junk or hidden.
func isPageEntry(name string) bool {
	if strings.HasPrefix(name, "__MACOSX/") {
		return false
	}
	base := name
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		base = name[idx+1:]
	}
	if strings.HasPrefix(base, ".") {
		return false
	}
	return imageExtensions[strings.ToLower(filepath.Ext(base))]
}

func splitPath(rel string) []string {
	if rel == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(filepath.ToSlash(rel), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

var (
	volumePattern   = regexp.MustCompile(`(?i)\bv(?:ol)?\.?\s*(\d+(?:\.\d+)?)`)
	chapterPattern  = regexp.MustCompile(`(?i)\b(?:c|ch|chapter|unit)\.?\s*(\d+(?:\.\d+)?)`)
	trailingPattern = regexp.MustCompile(`\s(\d+(?:\.\d+)?)$`)
	numberedSuffix  = regexp.MustCompile(`(?i)\s*(v|c|vol|chapter|ch)\s*\.?\s*\d+.*$`)
)

// parseFilenameInfo extracts volume and chapter numbers from an archive
// filename. A bare trailing number counts as a chapter when nothing else
// matched.
func parseFilenameInfo(filename string) (volume, chapter *float64) {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	if m := volumePattern.FindStringSubmatch(name); m != nil {
		if v, err := parseFloat(m[1]); err == nil {
			volume = &v
		}
	}
	if m := chapterPattern.FindStringSubmatch(name); m != nil {
		if c, err := parseFloat(m[1]); err == nil {
			chapter = &c
		}
	}
	if volume == nil && chapter == nil {
		if m := trailingPattern.FindStringSubmatch(name); m != nil {
			if c, err := parseFloat(m[1]); err == nil {
				chapter = &c
			}
		}
	}
	return volume, chapter
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// cleanSeriesName strips the volume/chapter suffix and extension from an
// archive filename, leaving the bare series name.
func cleanSeriesName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = numberedSuffix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// FormatSize renders a byte count the way the library displays it: one
// decimal place and the largest unit that keeps the number under 1024.
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f TB", size)
}
