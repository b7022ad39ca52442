package domain

// CatalogService is a named offering with a fixed duration.
// The catalog is static: loaded once at startup, never mutated.
type CatalogService struct {
	Name            string
	DurationMinutes int
}
