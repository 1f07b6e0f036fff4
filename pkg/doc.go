// Package pkg provides the core libraries for gamegrid, a deterministic
// thumbnail grid packer for game libraries.
//
// # Overview
//
// gamegrid takes an ordered list of games and lays their thumbnails out in
// rows of three to six, with at most one portrait thumbnail per row. The
// same list always produces the same rows, so every client that packs a
// library agrees on the layout without coordinating. The pkg directory is
// organized into three areas:
//
//  1. Domain logic ([grid], [shuffle], [thumbnail], [games])
//  2. Orchestration and output ([pipeline], [render], [server])
//  3. Infrastructure ([cache], [errors], [observability], [buildinfo])
//
// # Architecture
//
// The data flow through gamegrid:
//
//	Game library (embedded, TOML, YAML or JSON)
//	         ↓
//	    [games] package (filter, convert to grid items)
//	         ↓
//	    [shuffle] package (seeded shuffle, seed = len(items) + maxItems)
//	         ↓
//	    [grid] package (row packing against a [thumbnail] catalog)
//	         ↓
//	    [render] package (JSON, DOT, SVG, PNG, text)
//
// [pipeline] wraps the last two steps with caching and is shared by the
// CLI and the HTTP [server].
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/gamegrid/pkg/games"
//	    "github.com/matzehuels/gamegrid/pkg/grid"
//	)
//
//	rows := grid.Pack(games.Default().Items(), 0) // 0 means 24 items
//	for _, r := range rows {
//	    fmt.Println(r.Type, r.Height, len(r.Items))
//	}
//
// # Main Packages
//
// [grid] - The packer. [grid.Pack] uses the built-in catalog; [grid.New]
// takes any [thumbnail.Catalog]. Leftover items that cannot fill a row are
// dropped, or kept as a mixed pair with [grid.TrailingMixed].
//
// [thumbnail] - Image dimensions, orientation and the catalog that supplies
// artwork for games that bring none. Catalogs load from TOML or YAML files
// or are measured from an image directory with [thumbnail.Scan].
//
// [games] - The game library: validation, queries, file formats and a
// file-watching [games.Source] for servers.
//
// [pipeline] - Cached layout and render ([pipeline.Runner]) over any
// [cache.Cache] backend: file, memory, Redis or MongoDB.
//
// [server] - HTTP API serving games, categories and layouts.
//
// # Testing
//
//	go test ./pkg/...                     # All tests
//	go test -run Example ./pkg/grid       # Examples only
//	GAMEGRID_TEST_REDIS=redis://localhost:6379/15 go test ./pkg/cache
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/grid
// [shuffle]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/shuffle
// [thumbnail]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/thumbnail
// [games]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/games
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/render
// [server]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gamegrid/pkg/buildinfo
package pkg
