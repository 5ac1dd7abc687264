package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"javapy/internal/diag"
	"javapy/internal/pycheck"
	"javapy/internal/source"
	"javapy/internal/token"
)

// Current schema version - increment when cachePayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// DiskCache хранит результаты трансляции по ключу содержимое+опции.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema  uint16
	Tokens  []token.Token
	Lexical []diag.Diagnostic
	Syntax  []diag.Diagnostic
	Output  string

	Verified         bool
	VerifyOK         bool
	VerifyStatements int
	VerifyLine       int
	VerifyErr        string
}

// OpenDiskCache opens $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cache dir: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it if needed.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	// подкаталог "results" для удобства очистки
	return filepath.Join(c.dir, "results", key.String()+".mp")
}

// cacheKey hashes the normalized content together with every option that
// changes the result.
func cacheKey(file *source.File, opts Options) Digest {
	maxDiag, err := safecast.Conv[uint32](opts.maxDiagnostics())
	if err != nil {
		panic(fmt.Errorf("max diagnostics overflow: %w", err))
	}
	maxTok, err := safecast.Conv[uint32](max(opts.MaxTokenLen, 0))
	if err != nil {
		panic(fmt.Errorf("max token len overflow: %w", err))
	}
	var flags byte
	if opts.StrictLoops {
		flags |= 1
	}
	if opts.Verify {
		flags |= 2
	}

	buf := make([]byte, 0, 64)
	buf = binary.BigEndian.AppendUint16(buf, diskCacheSchemaVersion)
	buf = binary.BigEndian.AppendUint32(buf, maxDiag)
	buf = binary.BigEndian.AppendUint32(buf, maxTok)
	buf = append(buf, flags)
	buf = append(buf, file.Hash[:]...)
	return Digest(sha256.Sum256(buf))
}

// Put serializes and atomically writes a payload.
func (c *DiskCache) Put(key Digest, payload *cachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get reads a payload. A missing entry or a payload from another schema
// is a miss, not an error.
func (c *DiskCache) Get(key Digest, out *cachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог, потом удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func payloadFromResult(r *Result) *cachePayload {
	p := &cachePayload{
		Schema:  diskCacheSchemaVersion,
		Tokens:  r.Tokens,
		Lexical: r.Lexical,
		Syntax:  r.Syntax,
		Output:  r.Output,
	}
	if r.Verify != nil {
		p.Verified = true
		p.VerifyOK = r.Verify.OK
		p.VerifyStatements = r.Verify.Statements
		p.VerifyLine = r.Verify.Line
		if r.Verify.Err != nil {
			p.VerifyErr = r.Verify.Err.Error()
		}
	}
	return p
}

// restore fills r from p. Spans are rebased onto r.FileID: the entry may
// have been produced under a different FileSet.
func (p *cachePayload) restore(r *Result) {
	r.Tokens = p.Tokens
	for i := range r.Tokens {
		r.Tokens[i].Span.File = r.FileID
	}
	r.Lexical = rebase(p.Lexical, r.FileID)
	r.Syntax = rebase(p.Syntax, r.FileID)
	r.Output = p.Output
	if p.Verified {
		rep := pycheck.Report{OK: p.VerifyOK, Statements: p.VerifyStatements, Line: p.VerifyLine}
		if p.VerifyErr != "" {
			rep.Err = errors.New(p.VerifyErr)
		}
		r.Verify = &rep
	}
	r.Cached = true
}

func rebase(diags []diag.Diagnostic, id source.FileID) []diag.Diagnostic {
	for i := range diags {
		diags[i].Primary.File = id
		for j := range diags[i].Notes {
			diags[i].Notes[j].Span.File = id
		}
	}
	return diags
}
