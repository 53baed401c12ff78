package runner

type Config struct {
	// ForceMine re-runs the miner even when a report already exists.
	ForceMine bool
	// SkipMining evaluates existing reports only.
	SkipMining bool
}

func DefaultConfig() Config {
	return Config{}
}
