package games

import (
	"strings"

	"github.com/matzehuels/gamegrid/pkg/errors"
)

// Difficulty is a game's difficulty level.
type Difficulty string

// Difficulty levels.
const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Category groups games on the portal.
type Category string

// Categories.
const (
	Arcade   Category = "Arcade"
	Puzzle   Category = "Puzzle"
	Action   Category = "Action"
	Strategy Category = "Strategy"
	Racing   Category = "Racing"
)

var (
	difficulties = []Difficulty{Easy, Medium, Hard}
	categories   = []Category{Arcade, Puzzle, Action, Strategy, Racing}
)

// PlaceholderPrefix marks stand-in artwork served by the portal. Games
// whose thumbnail starts with it are treated as having none.
const PlaceholderPrefix = "/api/placeholder/"

// Game is one entry of the portal's game library.
type Game struct {
	ID                string     `json:"id" toml:"id" yaml:"id" bson:"id"`
	Title             string     `json:"title" toml:"title" yaml:"title" bson:"title"`
	Description       string     `json:"description,omitempty" toml:"description" yaml:"description,omitempty" bson:"description,omitempty"`
	Difficulty        Difficulty `json:"difficulty" toml:"difficulty" yaml:"difficulty" bson:"difficulty"`
	HighScore         int        `json:"high_score" toml:"high_score" yaml:"high_score" bson:"high_score"`
	Available         bool       `json:"available" toml:"available" yaml:"available" bson:"available"`
	Thumbnail         string     `json:"thumbnail,omitempty" toml:"thumbnail" yaml:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Category          Category   `json:"category" toml:"category" yaml:"category" bson:"category"`
	EstimatedPlayTime string     `json:"estimated_play_time,omitempty" toml:"estimated_play_time" yaml:"estimated_play_time,omitempty" bson:"estimated_play_time,omitempty"`
}

// HasArtwork reports whether the game brings a real thumbnail.
func (g Game) HasArtwork() bool {
	return g.Thumbnail != "" && !strings.HasPrefix(g.Thumbnail, PlaceholderPrefix)
}

// Validate checks a single game entry.
func (g Game) Validate() error {
	if err := errors.ValidateGameID(g.ID); err != nil {
		return err
	}
	if strings.TrimSpace(g.Title) == "" {
		return errors.New(errors.ErrCodeInvalidLibrary, "game %s: title is required", g.ID)
	}
	if !ValidDifficulty(string(g.Difficulty)) {
		return errors.New(errors.ErrCodeInvalidLibrary, "game %s: unknown difficulty %q", g.ID, g.Difficulty)
	}
	if !ValidCategory(string(g.Category)) {
		return errors.New(errors.ErrCodeInvalidLibrary, "game %s: unknown category %q", g.ID, g.Category)
	}
	if g.HighScore < 0 {
		return errors.New(errors.ErrCodeInvalidLibrary, "game %s: negative high score", g.ID)
	}
	if g.Thumbnail != "" {
		if err := errors.ValidateImageRef(g.Thumbnail); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLibrary, err, "game %s", g.ID)
		}
	}
	return nil
}

// ValidDifficulty reports whether s names a difficulty level.
func ValidDifficulty(s string) bool {
	for _, d := range difficulties {
		if string(d) == s {
			return true
		}
	}
	return false
}

// ValidCategory reports whether s names a category.
func ValidCategory(s string) bool {
	for _, c := range categories {
		if string(c) == s {
			return true
		}
	}
	return false
}
