package cache

// SQL schemas for cache tables
// All cache tables use "cache_key" as the primary key column for consistency

// GoogleBooksCacheSchema defines the schema for Google Books title lookups.
// The cache key is the normalized queried title; entries carry the mapped
// response including "not found" markers for negative caching. Each entry
// stores its own expiry so negative entries can live shorter than hits.
const GoogleBooksCacheSchema = `
CREATE TABLE IF NOT EXISTS googlebooks_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	expires_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_googlebooks_cached_at ON googlebooks_cache(cached_at);
`

// AllCacheSchemas contains all cache table schemas for easy initialization
var AllCacheSchemas = []string{
	GoogleBooksCacheSchema,
}

// ValidCacheTableNames is the whitelist of allowed cache table names
// Used to prevent SQL injection when interpolating table names
var ValidCacheTableNames = map[string]bool{
	"googlebooks_cache": true,
}
