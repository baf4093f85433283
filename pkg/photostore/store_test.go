package photostore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header is enough for content sniffing
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func openTestStore(t *testing.T, now time.Time) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photos.json")
	s, err := Open(path)
	require.NoError(t, err)
	s.now = func() time.Time { return now }
	return s, path
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	s, _ := openTestStore(t, time.Now())
	assert.NotNil(t, s.List())
	assert.Empty(t, s.List())
}

func TestOpen_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photos.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestAdd_DefaultsAndPersistence(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	s, path := openTestStore(t, now)

	p, err := s.Add("", "data:image/png;base64,AAAA", "")
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), p.ID)
	assert.Equal(t, "2025-01-15", p.Date)
	assert.Equal(t, DefaultNote, p.Note)

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []Photo{p}, reopened.List())
}

func TestAdd_IDsStayUnique(t *testing.T) {
	s, path := openTestStore(t, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))

	first, err := s.Add("2025-01-15", "a", "front")
	require.NoError(t, err)
	second, err := s.Add("2025-01-15", "b", "side")
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)

	// a reopened store continues after the highest stored ID
	reopened, err := Open(path)
	require.NoError(t, err)
	reopened.now = s.now
	third, err := reopened.Add("2025-01-15", "c", "back")
	require.NoError(t, err)
	assert.Equal(t, second.ID+1, third.ID)

	assert.Equal(t, []string{"front", "side", "back"}, notes(reopened.List()))
}

func TestAdd_BadDate(t *testing.T) {
	s, _ := openTestStore(t, time.Now())
	_, err := s.Add("15/01/2025", "a", "")
	assert.Error(t, err)
	assert.Empty(t, s.List())
}

func TestAddImage(t *testing.T) {
	s, _ := openTestStore(t, time.Now())

	p, err := s.AddImage("2025-01-15", pngBytes, "front")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.ImgData, "data:image/png;base64,"))

	_, err = s.AddImage("2025-01-15", []byte("plain text, not an image"), "")
	assert.ErrorIs(t, err, ErrNotImage)

	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, MaxImageBytes)...)
	_, err = s.AddImage("2025-01-15", big, "")
	assert.ErrorIs(t, err, ErrImageTooLarge)

	assert.Len(t, s.List(), 1)
}

func TestDelete(t *testing.T) {
	s, path := openTestStore(t, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	a, err := s.Add("", "a", "a")
	require.NoError(t, err)
	b, err := s.Add("", "b", "b")
	require.NoError(t, err)

	require.NoError(t, s.Delete(a.ID))
	assert.ErrorIs(t, s.Delete(a.ID), ErrNotFound)
	assert.Equal(t, []Photo{b}, s.List())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []Photo{b}, reopened.List())
}

func TestConcurrentAdds(t *testing.T) {
	s, _ := openTestStore(t, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Add("", "x", "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := map[int64]bool{}
	for _, p := range s.List() {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 20)
}

func notes(photos []Photo) []string {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		out = append(out, p.Note)
	}
	return out
}
