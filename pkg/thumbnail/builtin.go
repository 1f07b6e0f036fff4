package thumbnail

import "sync"

// builtinPortrait and builtinLandscape list the stock thumbnails shipped
// with the portal.
var (
	builtinLandscape = []string{
		"12312312312weqwew3123.png",
		"34234234.jpg",
		"ABDUCXTION.jpg",
		"dead piccalo.jpg",
		"ph1.jpg",
		"ph3.jpg",
		"ph5.jpg",
		"Powerr.jpg",
		"Untitled (3).png",
		"WhatsApp Image 2024-10-10222 at 18.11.45_bf26d145.jpg",
		"WhatsApp Image 2024-10-16 at 18.33315.10_804590e3.jpg",
		"WhatsApp Image 2024-10-27 at 17.47.4339_6e2ace75.jpg",
	}
	builtinPortrait = []string{
		"8ZxiKr9.jpeg",
		"34342342.jpeg",
		"ASpiring.jpg",
		"king kong.jpg",
		"ph2.jpg",
		"ph4.jpg",
		"PITO.jpg",
		"Squishy.jpg",
		"Untitled (14).png",
		"WhatsApp Image 2024-10-16 at 18.15.08_3a7498b7.jpg",
		"WhatsApp Image 2024-10-24 at 19.39.16_df0ad8ererer8.jpg",
		"WhatsApp Image 2024-11-01 at 18.45.36weqwew_f722efeb.jpg",
	}
)

// Builtin returns the stock 24-entry catalog (12 landscape 1920×1080,
// 12 portrait 1080×1920) under [DefaultBasePath]. The catalog is built once.
var Builtin = sync.OnceValue(func() *Catalog {
	entries := make(map[string]Dimensions, len(builtinLandscape)+len(builtinPortrait))
	for _, name := range builtinLandscape {
		entries[name] = FromSize(1920, 1080)
	}
	for _, name := range builtinPortrait {
		entries[name] = FromSize(1080, 1920)
	}
	c, err := NewCatalog(entries)
	if err != nil {
		panic("thumbnail: builtin catalog: " + err.Error())
	}
	return c
})
