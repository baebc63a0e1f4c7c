package checkpoint

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/disco/metrics"
)

// Config configures Open.
type Config struct {
	// Path is the database directory; ignored when InMemory is set.
	Path string

	InMemory   bool
	SyncWrites bool

	// Run namespaces the keys. The zero UUID makes Open pick a new one.
	Run uuid.UUID

	Logger  *zap.Logger
	Metrics *metrics.Collectors
}

// DefaultConfig is a durable on-disk store at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig is a store without persistence, for tests and single-process runs.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger routes badger's messages to zap.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func (l badgerLogger) Errorf(f string, args ...interface{})   { l.s.Errorf(f, args...) }
func (l badgerLogger) Warningf(f string, args ...interface{}) { l.s.Warnf(f, args...) }
func (l badgerLogger) Infof(f string, args ...interface{})    { l.s.Debugf(f, args...) }
func (l badgerLogger) Debugf(f string, args ...interface{})   { l.s.Debugf(f, args...) }
