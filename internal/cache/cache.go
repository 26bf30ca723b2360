// Package cache persists results of expensive bignum operations
// (factorial, next-prime) across CLI runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"decint/internal/bignum"
)

// Current schema version - increment when Payload format changes.
const schemaVersion uint16 = 1

// Digest identifies one cached operation instance.
type Digest [sha256.Size]byte

// Key derives the digest for an operation applied to an operand.
func Key(op string, operand bignum.Int) Digest {
	h := sha256.New()
	h.Write([]byte(op))
	h.Write([]byte{0})
	h.Write([]byte(operand.String()))
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Payload stores one cached result together with enough context to
// detect stale or colliding entries.
type Payload struct {
	Schema  uint16
	Op      string
	Operand bignum.Int
	Result  bignum.Int
}

// Cache stores payloads per digest on disk.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a disk cache at the standard XDG location.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDir(filepath.Join(base, app))
}

// OpenDir initializes a disk cache rooted at dir.
func OpenDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Results live in a subdirectory for easy manual cleanup.
	return filepath.Join(c.dir, "results", hexKey+".mp")
}

// Put serializes and writes a result to the disk cache.
func (c *Cache) Put(op string, operand, result bignum.Int) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(Key(op, operand))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	payload := Payload{Schema: schemaVersion, Op: op, Operand: operand, Result: result}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replacement.
	return os.Rename(f.Name(), p)
}

// Get reads a cached result. The boolean reports a usable hit.
func (c *Cache) Get(op string, operand bignum.Int) (bignum.Int, bool, error) {
	if c == nil {
		return bignum.Int{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(Key(op, operand)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return bignum.Int{}, false, nil
		}
		return bignum.Int{}, false, err
	}
	defer f.Close()

	var payload Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return bignum.Int{}, false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	// A schema bump or digest collision invalidates the entry.
	if payload.Schema != schemaVersion || payload.Op != op || !payload.Operand.Equal(operand) {
		return bignum.Int{}, false, nil
	}
	return payload.Result, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "results"))
}
