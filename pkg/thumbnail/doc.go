// Package thumbnail measures and catalogs the thumbnail images that
// gamegrid assigns to games without artwork of their own.
//
// # Catalogs
//
// A [Catalog] maps an image name to its [Dimensions]. Catalogs are
// immutable once built and are injected into the packer rather than read
// from package state:
//
//	cat := thumbnail.Builtin()                 // stock 24-image table
//	cat, err := thumbnail.LoadFile("cat.toml") // from disk
//	cat, err := thumbnail.Scan(ctx, "public/Thumbnails", thumbnail.ScanOptions{})
//
// [Catalog.Lookup] resolves any reference (bare name, path or URL) and
// never fails: unknown images are assumed to be 1920×1080 landscape.
//
// # Cursors
//
// A [Cursor] hands out catalog entries in sorted key order without
// repeating one until the whole catalog has been used, then starts over.
// [Cursor.NextExcluding] skips entries of one orientation, which the grid
// packer uses to keep a second portrait out of a row. When every unskipped
// entry of the cycle is used it starts over early, so a catalog with as
// many portraits as landscapes repeats landscapes before its portraits
// run out.
package thumbnail
