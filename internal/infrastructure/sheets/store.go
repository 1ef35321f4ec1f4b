package sheets

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"go.uber.org/zap"
)

const (
	DefaultRequestTimeout = 10 * time.Second
	idColumn              = "ID"
)

// Observer receives store events; the metrics package implements it.
type Observer interface {
	StoreCall(table, op string, err error)
	CacheLookup(table string, hit bool)
	StoreRetry(table, op string)
}

type nopObserver struct{}

func (nopObserver) StoreCall(string, string, error) {}
func (nopObserver) CacheLookup(string, bool)        {}
func (nopObserver) StoreRetry(string, string)       {}

// Store wraps a Backend with schema bootstrap, throttling, retries, timeouts
// and a read cache.
//
// Writes are serialized inside this process only. Two processes updating the
// same row still race and the last write wins.
type Store struct {
	backend  Backend
	cache    *Cache
	throttle *Throttle
	timeout  time.Duration
	logger   *zap.Logger
	observer Observer

	mu      sync.RWMutex
	headers map[string][]string

	writeMu sync.Mutex
}

type Option func(*Store)

func WithCache(c *Cache) Option {
	return func(s *Store) { s.cache = c }
}

func WithThrottle(t *Throttle) Option {
	return func(s *Store) { s.throttle = t }
}

func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		cache:    NewCache(DefaultCacheTTL),
		throttle: NewThrottle(DefaultRateLimitRequests, DefaultRateLimitWindow, DefaultMaxRetries),
		timeout:  DefaultRequestTimeout,
		logger:   zap.NewNop(),
		observer: nopObserver{},
		headers:  make(map[string][]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close drops cached reads and known headers.
func (s *Store) Close() {
	s.cache.Clear()
	s.mu.Lock()
	s.headers = make(map[string][]string)
	s.mu.Unlock()
}

// call runs one backend operation under the throttle with its own timeout.
func (s *Store) call(ctx context.Context, table, op string, fn func(context.Context) error) error {
	err := s.throttle.Do(ctx, func(ctx context.Context) error {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		err := fn(cctx)
		if err != nil && errors.Is(cctx.Err(), context.DeadlineExceeded) && !errors.Is(err, apperr.ErrStoreUnavailable) {
			return apperr.Unavailable(op+" "+table, err)
		}
		return err
	}, func(err error, wait time.Duration) {
		s.observer.StoreRetry(table, op)
		s.logger.Warn("[sheets][store] rate limited, retrying",
			zap.String("table", table), zap.String("op", op), zap.Duration("wait", wait), zap.Error(err))
	})
	s.observer.StoreCall(table, op, err)
	return err
}

// EnsureSchema creates table with header when missing and writes the header
// into an empty first row. A header that is a prefix of the expected one is
// extended in place. Data rows are never modified; any other first row is a
// schema mismatch.
func (s *Store) EnsureSchema(ctx context.Context, table string, header []string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var tables []string
	err := s.call(ctx, table, "list_tables", func(ctx context.Context) error {
		var err error
		tables, err = s.backend.ListTables(ctx)
		return err
	})
	if err != nil {
		return err
	}

	if !slices.Contains(tables, table) {
		s.logger.Info("[sheets][store] creating table", zap.String("table", table), zap.Int("columns", len(header)))
		if err := s.call(ctx, table, "create_table", func(ctx context.Context) error {
			return s.backend.CreateTable(ctx, table, len(header))
		}); err != nil {
			return err
		}
		return s.writeHeader(ctx, table, header)
	}

	var rows [][]string
	if err := s.call(ctx, table, "read", func(ctx context.Context) error {
		var err error
		rows, err = s.backend.ReadAll(ctx, table)
		return err
	}); err != nil {
		return err
	}

	existing := []string{}
	if len(rows) > 0 {
		existing = trimTrailingEmpty(rows[0])
	}
	switch {
	case len(existing) == 0:
		s.logger.Info("[sheets][store] writing missing header", zap.String("table", table))
		return s.writeHeader(ctx, table, header)
	case slices.Equal(existing, header):
		s.setHeader(table, header)
		return nil
	case len(existing) < len(header) && slices.Equal(existing, header[:len(existing)]):
		s.logger.Info("[sheets][store] extending header",
			zap.String("table", table), zap.Int("from", len(existing)), zap.Int("to", len(header)))
		return s.writeHeader(ctx, table, header)
	default:
		return fmt.Errorf("header of %s is %v: %w", table, existing,
			&apperr.SchemaMismatchError{Table: table, Want: len(header), Got: len(existing)})
	}
}

func (s *Store) writeHeader(ctx context.Context, table string, header []string) error {
	if err := s.call(ctx, table, "write_header", func(ctx context.Context) error {
		return s.backend.WriteRow(ctx, table, 1, header)
	}); err != nil {
		return err
	}
	s.setHeader(table, header)
	s.cache.InvalidateTable(table)
	return nil
}

func (s *Store) setHeader(table string, header []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headers[table] = slices.Clone(header)
}

// Header returns the registered header of table, reading it when unknown.
func (s *Store) Header(ctx context.Context, table string) ([]string, error) {
	s.mu.RLock()
	h, ok := s.headers[table]
	s.mu.RUnlock()
	if ok {
		return h, nil
	}
	var rows [][]string
	if err := s.call(ctx, table, "read", func(ctx context.Context) error {
		var err error
		rows, err = s.backend.ReadAll(ctx, table)
		return err
	}); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h = trimTrailingEmpty(rows[0])
	s.setHeader(table, h)
	return h, nil
}

// Append adds one row. The row must match the header width.
func (s *Store) Append(ctx context.Context, table string, values []string) error {
	header, err := s.Header(ctx, table)
	if err != nil {
		return err
	}
	if len(header) > 0 && len(values) != len(header) {
		return &apperr.SchemaMismatchError{Table: table, Want: len(header), Got: len(values)}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.call(ctx, table, "append", func(ctx context.Context) error {
		return s.backend.AppendRow(ctx, table, values)
	}); err != nil {
		return err
	}
	s.cache.InvalidateTable(table)
	return nil
}

// Scan reads the whole table and keeps the records matching pred (nil keeps
// all) in sheet order.
func (s *Store) Scan(ctx context.Context, table string, pred Predicate) ([]Record, error) {
	var rows [][]string
	if err := s.call(ctx, table, "read", func(ctx context.Context) error {
		var err error
		rows, err = s.backend.ReadAll(ctx, table)
		return err
	}); err != nil {
		return nil, err
	}
	return toRecords(rows, pred), nil
}

// ScanCached is Scan with results kept for the cache TTL under shape.
func (s *Store) ScanCached(ctx context.Context, table, shape string, pred Predicate) ([]Record, error) {
	key := cacheKey(table, shape)
	if recs, ok := s.cache.Get(key); ok {
		s.observer.CacheLookup(table, true)
		return slices.Clone(recs), nil
	}
	s.observer.CacheLookup(table, false)

	gen := s.cache.Generation(table)
	recs, err := s.Scan(ctx, table, pred)
	if err != nil {
		return nil, err
	}
	s.cache.SetIfCurrent(table, gen, key, recs)
	return slices.Clone(recs), nil
}

// UpdateField sets one cell of the row whose ID equals id.
func (s *Store) UpdateField(ctx context.Context, table, id, field, value string) error {
	return s.UpdateFields(ctx, table, id, map[string]string{field: value})
}

// UpdateFields sets several cells of the row whose ID equals id. The row is
// located by a fresh linear scan. Returns apperr.ErrNotFound when no row
// matches.
func (s *Store) UpdateFields(ctx context.Context, table, id string, fields map[string]string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperr.NewValidationError("id", "is required")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	columns, rowNum, err := s.findRow(ctx, table, id)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := columns[name]; !ok {
			return apperr.NewValidationError(name, "unknown column in "+table)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	defer s.cache.InvalidateTable(table)
	for _, name := range names {
		col := columns[name] + 1
		value := fields[name]
		if err := s.call(ctx, table, "update", func(ctx context.Context) error {
			return s.backend.UpdateCell(ctx, table, rowNum, col, value)
		}); err != nil {
			return err
		}
	}
	return nil
}

// Replace overwrites the whole row whose ID equals id with values.
func (s *Store) Replace(ctx context.Context, table, id string, values []string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperr.NewValidationError("id", "is required")
	}
	header, err := s.Header(ctx, table)
	if err != nil {
		return err
	}
	if len(header) > 0 && len(values) != len(header) {
		return &apperr.SchemaMismatchError{Table: table, Want: len(header), Got: len(values)}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_, rowNum, err := s.findRow(ctx, table, id)
	if err != nil {
		return err
	}
	if err := s.call(ctx, table, "write_row", func(ctx context.Context) error {
		return s.backend.WriteRow(ctx, table, rowNum, values)
	}); err != nil {
		return err
	}
	s.cache.InvalidateTable(table)
	return nil
}

// findRow locates id with a fresh read and returns the header columns and
// the 1-based sheet row.
func (s *Store) findRow(ctx context.Context, table, id string) (map[string]int, int, error) {
	var rows [][]string
	if err := s.call(ctx, table, "read", func(ctx context.Context) error {
		var err error
		rows, err = s.backend.ReadAll(ctx, table)
		return err
	}); err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, apperr.NotFound(table, id)
	}

	columns := columnIndex(rows[0])
	idCol, ok := columns[idColumn]
	if !ok {
		return nil, 0, fmt.Errorf("%s has no %s column: %w", table, idColumn, apperr.ErrSchemaMismatch)
	}
	for i, r := range rows[1:] {
		if idCol < len(r) && strings.TrimSpace(r[idCol]) == id {
			return columns, i + 2, nil
		}
	}
	return nil, 0, apperr.NotFound(table, id)
}

func toRecords(rows [][]string, pred Predicate) []Record {
	if len(rows) == 0 {
		return nil
	}
	header := trimTrailingEmpty(rows[0])
	columns := columnIndex(header)
	out := make([]Record, 0, len(rows)-1)
	for i, r := range rows[1:] {
		if isBlank(r) {
			continue
		}
		// Short rows are padded to the header; extra non-empty cells are kept
		// so decoders can reject rows wider than their layout.
		values := make([]string, max(len(header), filledWidth(r)))
		copy(values, r)
		rec := Record{Row: i + 2, Values: values, columns: columns}
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := idx[h]; !dup && h != "" {
			idx[h] = i
		}
	}
	return idx
}

func filledWidth(row []string) int {
	end := len(row)
	for end > 0 && strings.TrimSpace(row[end-1]) == "" {
		end--
	}
	return end
}

func trimTrailingEmpty(row []string) []string {
	return slices.Clone(row[:filledWidth(row)])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
