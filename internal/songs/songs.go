package songs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Song represents a single entry of the songbook.
type Song struct {
	ID       string
	Title    string // Marathi title
	AltTitle string // English title
	Category string
	EngRef   string // e.g. "Eng. 695", empty if absent
	TuneRef  string // e.g. "Tune 167", empty if absent
	Lyrics   string
}

// HasRefs reports whether the song carries at least one cross-reference.
func (s Song) HasRefs() bool {
	return s.EngRef != "" || s.TuneRef != ""
}

// Catalog is the ordered, read-only list of songs loaded at startup.
type Catalog struct {
	songs []Song
}

// NewCatalog wraps songs in a Catalog. The slice is copied.
func NewCatalog(songs []Song) *Catalog {
	return &Catalog{songs: append([]Song(nil), songs...)}
}

// Songs returns the songs in load order. Callers must not modify the result.
func (c *Catalog) Songs() []Song {
	if c == nil {
		return nil
	}
	return c.songs
}

// Len returns the number of songs in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.songs)
}

// Find returns the song with the given id.
func (c *Catalog) Find(id string) (Song, bool) {
	for _, s := range c.Songs() {
		if s.ID == id {
			return s, true
		}
	}
	return Song{}, false
}

var (
	// ErrResourceUnavailable is returned when the dataset cannot be opened or read.
	ErrResourceUnavailable = errors.New("song dataset unavailable")
	// ErrDecode is returned when the dataset is not a valid list of songs.
	ErrDecode = errors.New("song dataset malformed")
)

// BundledName is the name of the dataset shipped inside the binary.
const BundledName = "assets/songs.json"

//go:embed assets/songs.json
var bundled embed.FS

// Bundled returns the embedded asset filesystem holding BundledName.
func Bundled() fs.FS {
	return bundled
}

// record mirrors one dataset entry. Pointers distinguish a missing key
// from an empty value.
type record struct {
	ID       *string `json:"id" yaml:"id"`
	Title    *string `json:"title_marathi" yaml:"title_marathi"`
	AltTitle *string `json:"title_english" yaml:"title_english"`
	Category *string `json:"category" yaml:"category"`
	EngRef   *string `json:"eng_ref" yaml:"eng_ref"`
	TuneRef  *string `json:"tune_ref" yaml:"tune_ref"`
	Lyrics   *string `json:"lyrics" yaml:"lyrics"`
}

func (r record) song(index int) (Song, error) {
	required := []struct {
		name  string
		value *string
	}{
		{"id", r.ID},
		{"title_marathi", r.Title},
		{"title_english", r.AltTitle},
		{"category", r.Category},
		{"lyrics", r.Lyrics},
	}
	for _, f := range required {
		if f.value == nil {
			return Song{}, fmt.Errorf("record %d: missing %q", index, f.name)
		}
	}
	s := Song{
		ID:       *r.ID,
		Title:    *r.Title,
		AltTitle: *r.AltTitle,
		Category: *r.Category,
		Lyrics:   *r.Lyrics,
	}
	if r.EngRef != nil {
		s.EngRef = *r.EngRef
	}
	if r.TuneRef != nil {
		s.TuneRef = *r.TuneRef
	}
	return s, nil
}

// Load reads the named dataset from fsys and decodes it into a Catalog.
//
// Load never returns a nil Catalog. When the resource cannot be read or
// decoded it returns an empty Catalog together with an error wrapping
// ErrResourceUnavailable or ErrDecode; callers are expected to report
// the error and carry on with no songs.
func Load(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return &Catalog{}, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}

	songs, err := Decode(data, path.Ext(name))
	if err != nil {
		return &Catalog{}, err
	}
	return &Catalog{songs: songs}, nil
}

// Decode parses data as a list of songs. ext selects the format:
// ".yaml" and ".yml" are YAML, anything else is JSON with comments allowed.
func Decode(data []byte, ext string) ([]Song, error) {
	var records []record
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal yaml: %w", ErrDecode, err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &records); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal json: %w", ErrDecode, err)
		}
	}

	songs := make([]Song, 0, len(records))
	for i, r := range records {
		s, err := r.song(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		songs = append(songs, s)
	}
	return songs, nil
}
