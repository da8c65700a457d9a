package ports

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

// ResolverMetrics receives counters from the transform resolver.
type ResolverMetrics interface {
	// CacheHit records a resolve answered from the cache.
	CacheHit()
	// CacheMiss records a resolve that had to evaluate.
	CacheMiss()
	// Evaluation records one evaluated expression node.
	Evaluation()
	// Invalidation records n dropped cache entries.
	Invalidation(n int)
	// Failure records a failed resolve that was reported as an error.
	Failure()
	// Fallback records a failure replaced by the identity matrix.
	Fallback()
}
