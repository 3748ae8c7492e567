package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	MaxLinesPerTask    int
	LockTimeoutSec     int
	GapMetricsRowLimit int

	NormSecondsPerUnit float64
	PositionPoints     float64
	UnitPoints         float64
}
