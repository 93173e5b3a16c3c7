package cache

// Cache is the small keyed store the duel uses for derived, recomputable data
// such as zone layouts per frame size.
type Cache interface {
	Get(key any) (any, bool)
	Add(key, value any)
	Keys() []any
	Delete(key any)
	Len() int
	Purge()
}
