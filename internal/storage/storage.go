package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "viewer/preferences"
	keyFirstLaunch = "viewer/first_launch"
)

// Theme names a board color scheme.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeGreen   Theme = "green"
	ThemeBlue    Theme = "blue"
)

// Themes lists every theme in cycling order.
var Themes = []Theme{ThemeClassic, ThemeGreen, ThemeBlue}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// Square size bounds in pixels.
const (
	MinSquareSize     = 32
	MaxSquareSize     = 128
	DefaultSquareSize = 80
)

// Preferences stores viewer settings.
type Preferences struct {
	Theme           Theme     `json:"theme"`
	ShowCoordinates bool      `json:"show_coordinates"`
	Flipped         bool      `json:"flipped"`
	SquareSize      int       `json:"square_size"`
	LastOpened      time.Time `json:"last_opened"`
}

// DefaultPreferences returns default viewer preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Theme:           ThemeClassic,
		ShowCoordinates: true,
		SquareSize:      DefaultSquareSize,
		LastOpened:      time.Now(),
	}
}

// normalize replaces out-of-range values with defaults.
func (p *Preferences) normalize() {
	known := false
	for _, th := range Themes {
		if p.Theme == th {
			known = true
			break
		}
	}
	if !known {
		p.Theme = ThemeClassic
	}
	if p.SquareSize < MinSquareSize {
		p.SquareSize = MinSquareSize
	}
	if p.SquareSize > MaxSquareSize {
		p.SquareSize = MaxSquareSize
	}
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens or creates a database in dir.
func Open(dir string) (*Storage, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Storage, error) {
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete records that the help overlay has been shown.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves viewer preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastOpened = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads viewer preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})
	if err != nil {
		return DefaultPreferences(), err
	}

	prefs.normalize()
	return prefs, nil
}
