package index

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dpkgview/pkg/cache"
	"github.com/matzehuels/dpkgview/pkg/control"
	"github.com/matzehuels/dpkgview/pkg/errors"
	"github.com/matzehuels/dpkgview/pkg/observability"
)

// recordsKeyType labels cache events for parsed record lists.
const recordsKeyType = "records"

// Service answers queries against one control file.
//
// The Service is stateless apart from its cache and logger: each query
// reads the file (or a cache entry keyed on its current size and
// modification time) and computes the result from scratch. It is safe for
// concurrent use.
type Service struct {
	Path   string
	Cache  cache.Cache
	TTL    time.Duration
	Logger *log.Logger
}

// NewService creates a service for the control file at path.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, log output is discarded.
func NewService(path string, c cache.Cache, ttl time.Duration, logger *log.Logger) *Service {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Service{
		Path:   path,
		Cache:  c,
		TTL:    ttl,
		Logger: logger,
	}
}

// Names returns every package name in file order.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	start := time.Now()
	records, err := s.Records(ctx)
	if err != nil {
		observability.Query().OnQuery(ctx, "names", time.Since(start), err)
		return nil, err
	}
	names := Names(records)
	observability.Query().OnQuery(ctx, "names", time.Since(start), nil)
	return names, nil
}

// Detail returns the resolved detail for name. Unknown names are not an
// error.
func (s *Service) Detail(ctx context.Context, name string) (*Detail, error) {
	start := time.Now()
	records, err := s.Records(ctx)
	if err != nil {
		observability.Query().OnQuery(ctx, "detail", time.Since(start), err)
		return nil, err
	}
	d := Query(records, name)
	observability.Query().OnQuery(ctx, "detail", time.Since(start), nil)
	s.Logger.Debug("resolved package",
		"package", name,
		"depends", len(d.Depends),
		"dependents", len(d.Dependents))
	return d, nil
}

// Records returns the parsed stanzas of the control file in file order.
//
// With a cache configured, records are stored under a key derived from the
// file's path, size and modification time. Cache failures are logged and
// fall back to parsing; they never fail the query.
func (s *Service) Records(ctx context.Context) ([]control.Record, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileAccess, err, "stat control file %s", s.Path)
	}
	key := recordsKey(s.Path, info)

	if records, ok := s.cached(ctx, key); ok {
		return records, nil
	}

	records, err := s.parse(ctx)
	if err != nil {
		return nil, err
	}

	// Only cache when the file did not change while it was being read;
	// otherwise the key would describe different content.
	if after, err := os.Stat(s.Path); err == nil && recordsKey(s.Path, after) == key {
		s.store(ctx, key, records)
	}
	return records, nil
}

func (s *Service) parse(ctx context.Context) ([]control.Record, error) {
	observability.Query().OnParseStart(ctx, s.Path)
	start := time.Now()

	text, err := control.Load(s.Path)
	if err != nil {
		observability.Query().OnParseComplete(ctx, s.Path, 0, time.Since(start), err)
		return nil, err
	}
	records := control.Parse(text)

	took := time.Since(start)
	observability.Query().OnParseComplete(ctx, s.Path, len(records), took, nil)
	s.Logger.Debug("parsed control file", "path", s.Path, "stanzas", len(records), "duration", took)
	return records, nil
}

func (s *Service) cached(ctx context.Context, key string) ([]control.Record, bool) {
	data, hit, err := s.Cache.Get(ctx, key)
	if err != nil {
		s.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, recordsKeyType)
		return nil, false
	}

	var records []control.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.Logger.Warn("discarding corrupt cache entry", "err", err)
		_ = s.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, recordsKeyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, recordsKeyType)
	return records, true
}

func (s *Service) store(ctx context.Context, key string, records []control.Record) {
	data, err := json.Marshal(records)
	if err != nil {
		s.Logger.Warn("cache encode failed", "err", err)
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.TTL); err != nil {
		s.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, recordsKeyType, len(data))
}

func recordsKey(path string, info os.FileInfo) string {
	return cache.Key(recordsKeyType, path, info.Size(), info.ModTime().UnixNano())
}
