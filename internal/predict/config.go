package predict

// MaxBatchSize is the largest batch PredictBatch accepts.
const MaxBatchSize = 100

const defaultBatchWorkers = 4

// Config holds Service tunables. Zero values select defaults.
type Config struct {
	// CacheSize is the number of model outcomes kept in the LRU; 0 disables caching.
	CacheSize int
	// BatchWorkers bounds concurrent inference within one batch.
	BatchWorkers int
}

func (c Config) withDefaults() Config {
	if c.BatchWorkers <= 0 {
		c.BatchWorkers = defaultBatchWorkers
	}
	if c.CacheSize < 0 {
		c.CacheSize = 0
	}
	return c
}
