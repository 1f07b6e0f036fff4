package cache

import (
	"context"
	"fmt"
	"strings"
)

// Open returns the backend named by spec:
//
//	""  or "file"                   FileCache in dir
//	"memory"                        MemoryCache with default TTLs
//	"none" or "off"                 NullCache
//	"redis://..." / "rediss://..."  RedisCache
//	"mongodb://..." / "mongodb+srv://..."  MongoCache
func Open(ctx context.Context, spec, dir string) (Cache, error) {
	switch {
	case spec == "" || spec == "file":
		if dir == "" {
			return nil, fmt.Errorf("file cache needs a directory")
		}
		return NewFileCache(dir)
	case spec == "memory":
		return NewMemoryCache(0, 0), nil
	case spec == "none" || spec == "off":
		return NewNullCache(), nil
	case strings.HasPrefix(spec, "redis://") || strings.HasPrefix(spec, "rediss://"):
		return NewRedisCache(ctx, spec, "")
	case strings.HasPrefix(spec, "mongodb://") || strings.HasPrefix(spec, "mongodb+srv://"):
		return NewMongoCache(ctx, spec, "", "")
	default:
		return nil, fmt.Errorf("unknown cache backend %q", spec)
	}
}
