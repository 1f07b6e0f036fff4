package games

import (
	_ "embed"
	"slices"
	"sync"

	"github.com/matzehuels/gamegrid/pkg/errors"
	"github.com/matzehuels/gamegrid/pkg/grid"
)

// Library is an immutable, ordered set of games with unique IDs.
// It is safe for concurrent use.
type Library struct {
	games []Game
	byID  map[string]int
}

// New validates games and builds a library. Order is preserved.
func New(games []Game) (*Library, error) {
	l := &Library{
		games: slices.Clone(games),
		byID:  make(map[string]int, len(games)),
	}
	for i, g := range l.games {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if _, dup := l.byID[g.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidLibrary, "duplicate game id %q", g.ID)
		}
		l.byID[g.ID] = i
	}
	return l, nil
}

//go:embed default.toml
var defaultLibrary []byte

// Default returns the library shipped with the portal.
var Default = sync.OnceValue(func() *Library {
	l, err := Parse(defaultLibrary, FormatTOML)
	if err != nil {
		panic("games: default library: " + err.Error())
	}
	return l
})

// Len returns the number of games.
func (l *Library) Len() int { return len(l.games) }

// All returns every game in library order.
func (l *Library) All() []Game { return slices.Clone(l.games) }

// ByID returns the game with the given ID.
func (l *Library) ByID(id string) (Game, bool) {
	i, ok := l.byID[id]
	if !ok {
		return Game{}, false
	}
	return l.games[i], true
}

// Available returns the playable games.
func (l *Library) Available() []Game {
	return l.filter(func(g Game) bool { return g.Available })
}

// ByCategory returns the games in a category. Unknown categories yield an
// empty, non-nil slice.
func (l *Library) ByCategory(category string) []Game {
	return l.filter(func(g Game) bool { return string(g.Category) == category })
}

// ByDifficulty returns the games of a difficulty level.
func (l *Library) ByDifficulty(difficulty string) []Game {
	return l.filter(func(g Game) bool { return string(g.Difficulty) == difficulty })
}

// Query narrows a library listing. Zero fields match everything.
type Query struct {
	Category   string
	Difficulty string
	Available  *bool
}

// Find returns the games matching q in library order.
func (l *Library) Find(q Query) []Game {
	return l.filter(func(g Game) bool {
		if q.Category != "" && string(g.Category) != q.Category {
			return false
		}
		if q.Difficulty != "" && string(g.Difficulty) != q.Difficulty {
			return false
		}
		if q.Available != nil && g.Available != *q.Available {
			return false
		}
		return true
	})
}

// Categories returns the categories present in the library, in the
// portal's display order.
func (l *Library) Categories() []Category {
	seen := map[Category]bool{}
	for _, g := range l.games {
		seen[g.Category] = true
	}
	out := []Category{}
	for _, c := range categories {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// Items converts games to layout items. Placeholder artwork is dropped so
// the packer assigns a catalog thumbnail instead.
func (l *Library) Items() []grid.Item {
	return ItemsOf(l.games)
}

// ItemsOf converts a game listing to layout items.
func ItemsOf(games []Game) []grid.Item {
	items := make([]grid.Item, len(games))
	for i, g := range games {
		items[i] = grid.Item{ID: g.ID, Title: g.Title}
		if g.HasArtwork() {
			items[i].Thumbnail = g.Thumbnail
		}
	}
	return items
}

func (l *Library) filter(keep func(Game) bool) []Game {
	out := []Game{}
	for _, g := range l.games {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}
