package driver

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	gocache "github.com/patrickmn/go-cache"
	"github.com/vmihailenco/msgpack/v5"

	"docstyle/internal/astdump"
	"docstyle/internal/check"
	"docstyle/internal/project"
	"docstyle/internal/version"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит отметки о чистых модулях на диске, по ключу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload records that a module passed every check.
type DiskPayload struct {
	Schema uint16

	// Path of the dump when it was checked; informational only.
	Path   string
	Module string
	Kind   uint8

	CheckedAt int64
}

// OpenDiskCache opens $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "locate cache directory")
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it if needed.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create cache directory %s", dir)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := key.String()
	// подкаталог по первому байту, чтобы не держать всё в одной директории
	return filepath.Join(c.dir, "clean", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
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
	defer func() { _ = os.Remove(tmp) }()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get reads a payload. A missing entry or one written by another schema
// version is a miss, not an error.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	// #nosec G304 -- path is derived from the cache key
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
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

// Cache remembers modules that passed every check: an in-process layer in
// front of an optional DiskCache. Only clean results are stored; a failing
// module is always re-checked so its diagnostic can be rendered.
type Cache struct {
	mem  *gocache.Cache
	disk *DiskCache

	hits   atomic.Int64
	misses atomic.Int64
}

const memCacheTTL = 30 * time.Minute

// NewCache creates a cache; disk may be nil.
func NewCache(disk *DiskCache) *Cache {
	return &Cache{
		mem:  gocache.New(memCacheTTL, 2*memCacheTTL),
		disk: disk,
	}
}

// Clean reports whether key is known to be clean. Disk hits are promoted
// to memory.
func (c *Cache) Clean(key project.Digest) bool {
	if c == nil {
		return false
	}
	k := key.String()
	if _, ok := c.mem.Get(k); ok {
		c.hits.Add(1)
		return true
	}
	var payload DiskPayload
	if ok, err := c.disk.Get(key, &payload); err == nil && ok {
		c.mem.Set(k, payload, gocache.DefaultExpiration)
		c.hits.Add(1)
		return true
	}
	c.misses.Add(1)
	return false
}

// MarkClean records key as clean in both layers.
func (c *Cache) MarkClean(key project.Digest, payload DiskPayload) error {
	if c == nil {
		return nil
	}
	payload.Schema = diskCacheSchemaVersion
	if payload.CheckedAt == 0 {
		payload.CheckedAt = time.Now().Unix()
	}
	c.mem.Set(key.String(), payload, gocache.DefaultExpiration)
	return c.disk.Put(key, &payload)
}

// Stats returns hit and miss counters since creation.
func (c *Cache) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

// settingsDigest hashes everything besides the inputs that changes a verdict.
func settingsDigest(cfg check.Config, warnings string, intf bool) project.Digest {
	h := sha256.New()
	_, _ = h.Write([]byte(version.Version))
	_, _ = h.Write([]byte{byte(astdump.SchemaVersion), boolByte(cfg.AnnotatedIgnores), boolByte(cfg.CheckComments), boolByte(intf)})
	_, _ = h.Write([]byte(cfg.DiscardOperation + "\x00" + warnings))
	var out project.Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey combines the dump bytes, the settings and, when comments come
// from the source file, the source hash.
func cacheKey(dump []byte, settings project.Digest, src ...project.Digest) project.Digest {
	return project.Combine(project.Sum(dump), append([]project.Digest{settings}, src...)...)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
