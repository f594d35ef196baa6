// Package columnar provides an in-memory column store. Values are
// run-length encoded at insert and the encoded runs are optionally
// block-compressed, trading CPU on access for a small resident footprint.
package columnar

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = errors.New("columnar: column not found")

	// ErrUnknownCompression is returned for an unrecognized compression name.
	ErrUnknownCompression = errors.New("columnar: unknown compression type")

	// ErrCorrupted is returned when encoded runs fail to decode.
	ErrCorrupted = errors.New("columnar: corrupted run encoding")
)

// Run is one run-length pair: Count consecutive occurrences of Value.
type Run struct {
	Value int64
	Count int
}

type column struct {
	blob    []byte // varint-encoded runs, possibly block-compressed
	length  int    // decoded element count
	runs    int
	rawSize int // encoded size before block compression
}

// Store holds named int64 columns in run-length encoded form.
//
// Columns are transformed at insert and reversed on access:
//   - AddColumn run-length encodes the values and block-compresses the runs
//   - Column undoes both steps and returns the original values
//   - Runs exposes the encoded pairs without expansion
//
// Thread safety: all methods are safe for concurrent use.
type Store struct {
	compression CompressionType

	mu      sync.RWMutex
	columns map[string]*column
}

// New creates an empty store. Encoded runs are block-compressed with the
// given type; CompressionNone keeps them as plain varint bytes.
func New(compression CompressionType) *Store {
	return &Store{
		compression: compression,
		columns:     make(map[string]*column),
	}
}

// Compression returns the block compression the store applies.
func (s *Store) Compression() CompressionType {
	return s.compression
}

// AddColumn run-length encodes values and stores them under name, replacing
// any existing column with that name. An empty values slice is valid.
func (s *Store) AddColumn(name string, values []int64) error {
	encoded, runs := encodeRuns(values)

	blob, err := compressBlock(encoded, s.compression)
	if err != nil {
		return fmt.Errorf("compress column %q: %w", name, err)
	}

	s.mu.Lock()
	s.columns[name] = &column{
		blob:    blob,
		length:  len(values),
		runs:    runs,
		rawSize: len(encoded),
	}
	s.mu.Unlock()

	return nil
}

// Column decodes the named column back into its full value slice.
func (s *Store) Column(name string) ([]int64, error) {
	c, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	if c.length == 0 {
		return []int64{}, nil
	}

	encoded, err := s.encodedRuns(c)
	if err != nil {
		return nil, err
	}

	out := make([]int64, 0, c.length)
	if err := decodeRuns(encoded, func(r Run) {
		for i := 0; i < r.Count; i++ {
			out = append(out, r.Value)
		}
	}); err != nil {
		return nil, err
	}

	if len(out) != c.length {
		return nil, fmt.Errorf("%w: decoded %d values, want %d", ErrCorrupted, len(out), c.length)
	}

	return out, nil
}

// Runs returns the run-length pairs of the named column without expanding
// them.
func (s *Store) Runs(name string) ([]Run, error) {
	c, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	if c.runs == 0 {
		return []Run{}, nil
	}

	encoded, err := s.encodedRuns(c)
	if err != nil {
		return nil, err
	}

	out := make([]Run, 0, c.runs)
	if err := decodeRuns(encoded, func(r Run) {
		out = append(out, r)
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// Length returns the decoded element count of the named column.
func (s *Store) Length(name string) (int, error) {
	c, err := s.lookup(name)
	if err != nil {
		return 0, err
	}

	return c.length, nil
}

// Names returns the stored column names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.columns))
	for name := range s.columns {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names
}

// MemoryUsage returns the resident footprint in bytes across all columns.
func (s *Store) MemoryUsage() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, c := range s.columns {
		total += int64(len(c.blob))
	}

	return total
}

// Ratio reports the resident size of the named column relative to its raw
// 8-byte-per-value size. Values below 1 mean the encoding paid off. An
// empty column reports 0.
func (s *Store) Ratio(name string) (float64, error) {
	c, err := s.lookup(name)
	if err != nil {
		return 0, err
	}

	if c.length == 0 {
		return 0, nil
	}

	return float64(len(c.blob)) / float64(8*c.length), nil
}

func (s *Store) lookup(name string) (*column, error) {
	s.mu.RLock()
	c, ok := s.columns[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	return c, nil
}

func (s *Store) encodedRuns(c *column) ([]byte, error) {
	if s.compression == CompressionNone {
		return c.blob, nil
	}

	return decompressBlock(c.blob, s.compression)
}

// encodeRuns collapses values into varint (value, count) pairs and reports
// the number of runs.
func encodeRuns(values []int64) ([]byte, int) {
	if len(values) == 0 {
		return nil, 0
	}

	buf := make([]byte, 0, 2*binary.MaxVarintLen64)
	var tmp [binary.MaxVarintLen64]byte

	appendRun := func(v int64, count int) {
		n := binary.PutVarint(tmp[:], v)
		buf = append(buf, tmp[:n]...)
		n = binary.PutUvarint(tmp[:], uint64(count))
		buf = append(buf, tmp[:n]...)
	}

	runs := 0
	current := values[0]
	count := 1

	for _, v := range values[1:] {
		if v == current {
			count++
			continue
		}
		appendRun(current, count)
		runs++
		current = v
		count = 1
	}
	appendRun(current, count)
	runs++

	return buf, runs
}

// decodeRuns walks varint (value, count) pairs, invoking fn once per run.
func decodeRuns(encoded []byte, fn func(Run)) error {
	off := 0
	for off < len(encoded) {
		v, n := binary.Varint(encoded[off:])
		if n <= 0 {
			return fmt.Errorf("%w: bad run value at offset %d", ErrCorrupted, off)
		}
		off += n

		c, n := binary.Uvarint(encoded[off:])
		if n <= 0 {
			return fmt.Errorf("%w: bad run count at offset %d", ErrCorrupted, off)
		}
		off += n

		fn(Run{Value: v, Count: int(c)})
	}

	return nil
}
