// Package photostore keeps progress photos in a local JSON file. Photos never
// leave the machine.
package photostore

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// MaxImageBytes is the largest image AddImage accepts.
	MaxImageBytes = 1024 * 1024
	DefaultNote   = "Progress Check"

	dateLayout = "2006-01-02"
)

var (
	ErrImageTooLarge = errors.New("image too large: choose an image under 1MB")
	ErrNotImage      = errors.New("file is not an image")
	ErrNotFound      = errors.New("photo not found")
)

// Photo is one progress photo. ImgData is a data URL.
type Photo struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	ImgData string `json:"imgData"`
	Note    string `json:"note"`
}

// Store handles file-based photo persistence.
type Store struct {
	path string
	now  func() time.Time

	mu     sync.RWMutex
	photos []Photo
	lastID int64
}

// Open loads the photo file at path. A missing file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now, photos: []Photo{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.photos); err != nil {
		return nil, fmt.Errorf("invalid photo file %s: %w", path, err)
	}
	if s.photos == nil {
		s.photos = []Photo{}
	}
	for _, p := range s.photos {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	log.Debugf("photostore: loaded %d photos from %s", len(s.photos), path)
	return s, nil
}

// List returns the photos in the order they were added.
func (s *Store) List() []Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Photo{}, s.photos...)
}

// Add appends a photo. The ID is the current time in milliseconds, bumped
// when needed so IDs stay unique and increasing. An empty date means today
// and an empty note means DefaultNote.
func (s *Store) Add(date, imgData, note string) (Photo, error) {
	now := s.now()
	if date == "" {
		date = now.Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return Photo{}, fmt.Errorf("date %q must be YYYY-MM-DD", date)
	}
	if note == "" {
		note = DefaultNote
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	photo := Photo{ID: id, Date: date, ImgData: imgData, Note: note}

	photos := append(append([]Photo{}, s.photos...), photo)
	if err := s.save(photos); err != nil {
		return Photo{}, err
	}
	s.photos = photos
	s.lastID = id
	return photo, nil
}

// AddImage stores raw image bytes as a base64 data URL.
func (s *Store) AddImage(date string, img []byte, note string) (Photo, error) {
	if len(img) > MaxImageBytes {
		return Photo{}, ErrImageTooLarge
	}
	mime := http.DetectContentType(img)
	if !strings.HasPrefix(mime, "image/") {
		return Photo{}, ErrNotImage
	}
	return s.Add(date, DataURL(mime, img), note)
}

// Delete removes the photo with the given ID.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos := make([]Photo, 0, len(s.photos))
	for _, p := range s.photos {
		if p.ID != id {
			photos = append(photos, p)
		}
	}
	if len(photos) == len(s.photos) {
		return ErrNotFound
	}
	if err := s.save(photos); err != nil {
		return err
	}
	s.photos = photos
	return nil
}

// DataURL encodes data as a data URL of the given MIME type.
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// save must be called with mu held.
func (s *Store) save(photos []Photo) error {
	data, err := json.Marshal(photos)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
