package history

import (
	"time"

	"github.com/Mavwarf/ctmicons/internal/icon"
)

// Entry is one recorded render.
type Entry struct {
	Time       time.Time
	Path       string
	Size       int
	Format     string
	FontSource string
	FontSize   int
	Bytes      int
	SHA256     string
}

// Store abstracts render history storage.
type Store interface {
	Record(res icon.Result) error
	Entries(limit int) ([]Entry, error) // newest first, 0 = all
	Clear() error
	Path() string
	Close() error
}
