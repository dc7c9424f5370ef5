package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const defaultTTL = time.Minute

// Fetcher загружает значение ключа и возвращает теги, которыми оно помечено.
// При ошибке теги тоже можно вернуть: ими помечается неудачный результат подписанного ключа.
type Fetcher func(ctx context.Context) (any, []Tag, error)

// Listener получает результат повторной загрузки подписанного ключа.
type Listener func(value any, err error)

type subscription struct {
	fetch     Fetcher
	listeners map[int]Listener
}

// Cache: кеш результатов запросов клиента с индексом по тегам.
// Живёт столько же, сколько сессия приложения; передаётся явно.
type Cache struct {
	mu      sync.Mutex
	items   *gocache.Cache
	keyTags map[string][]Tag
	byTag   map[Tag]map[string]struct{}
	subs    map[string]*subscription
	gen     map[string]uint64
	nextID  int
	logger  *zap.SugaredLogger
}

// New создаёт кеш. ttl — сколько живут данные без подписчиков.
func New(ttl time.Duration, logger *zap.SugaredLogger) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Cache{
		items:   gocache.New(ttl, 2*ttl),
		keyTags: map[string][]Tag{},
		byTag:   map[Tag]map[string]struct{}{},
		subs:    map[string]*subscription{},
		gen:     map[string]uint64{},
		logger:  logger,
	}
}

// Get возвращает закешированное значение ключа.
func (c *Cache) Get(key string) (any, bool) {
	return c.items.Get(key)
}

// Tags возвращает теги, которыми помечен ключ.
func (c *Cache) Tags(key string) []Tag {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Tag(nil), c.keyTags[key]...)
}

// Query отдаёт значение из кеша, а при промахе загружает его через fetch.
// Ошибки не кешируются.
func (c *Cache) Query(ctx context.Context, key string, fetch Fetcher) (any, error) {
	if v, ok := c.items.Get(key); ok {
		return v, nil
	}
	return c.load(ctx, key, fetch)
}

// Subscribe загружает ключ (если его нет в кеше) и подписывает listener на его
// повторные загрузки после инвалидации. Подписка сохраняется и при ошибке загрузки.
func (c *Cache) Subscribe(ctx context.Context, key string, fetch Fetcher, listener Listener) (any, func(), error) {
	c.mu.Lock()
	s, ok := c.subs[key]
	if !ok {
		s = &subscription{listeners: map[int]Listener{}}
		c.subs[key] = s
		// пока есть подписчики, данные не устаревают
		if v, found := c.items.Get(key); found {
			c.items.Set(key, v, gocache.NoExpiration)
		}
	}
	s.fetch = fetch
	id := c.nextID
	c.nextID++
	s.listeners[id] = listener
	c.mu.Unlock()

	unsubscribe := func() { c.unsubscribe(key, id) }

	v, err := c.Query(ctx, key, fetch)
	return v, unsubscribe, err
}

func (c *Cache) unsubscribe(key string, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.subs[key]
	if !ok {
		return
	}
	delete(s.listeners, id)
	if len(s.listeners) > 0 {
		return
	}
	delete(c.subs, key)
	if v, found := c.items.Get(key); found {
		c.items.Set(key, v, gocache.DefaultExpiration)
	}
}

// Subscribed сообщает, есть ли у ключа активные подписчики.
func (c *Cache) Subscribed(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.subs[key]
	return ok
}

// Invalidate удаляет все значения, помеченные любым из тегов, и синхронно
// перезагружает те из них, на которые есть подписка. Подписанные ключи сохраняют
// свои теги, пока перезагрузка их не заменит.
func (c *Cache) Invalidate(ctx context.Context, tags ...Tag) {
	c.mu.Lock()
	hit := map[string]struct{}{}
	for _, t := range tags {
		for k := range c.byTag[t] {
			hit[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(hit))
	for k := range hit {
		keys = append(keys, k)
		c.items.Delete(k)
		c.gen[k]++
		if _, ok := c.subs[k]; !ok {
			c.unindex(k)
		}
	}
	sort.Strings(keys)

	type refetch struct {
		key       string
		fetch     Fetcher
		listeners []Listener
	}
	var pending []refetch
	for _, k := range keys {
		s, ok := c.subs[k]
		if !ok || s.fetch == nil {
			continue
		}
		r := refetch{key: k, fetch: s.fetch}
		ids := make([]int, 0, len(s.listeners))
		for id := range s.listeners {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			r.listeners = append(r.listeners, s.listeners[id])
		}
		pending = append(pending, r)
	}
	c.mu.Unlock()

	if len(keys) > 0 {
		c.logger.Debugw("cache invalidated", "tags", tags, "keys", keys, "refetch", len(pending))
	}

	for _, r := range pending {
		v, err := c.load(ctx, r.key, r.fetch)
		for _, l := range r.listeners {
			l(v, err)
		}
	}
}

// load загружает ключ. Результат загрузки, начатой до инвалидации ключа,
// в кеш не попадает.
func (c *Cache) load(ctx context.Context, key string, fetch Fetcher) (any, error) {
	c.mu.Lock()
	gen := c.gen[key]
	c.mu.Unlock()

	v, tags, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen[key] != gen {
		c.logger.Debugw("stale cache load dropped", "key", key)
		return v, err
	}
	if err != nil {
		if _, ok := c.subs[key]; ok && tags != nil {
			c.index(key, tags)
		}
		return nil, err
	}
	exp := gocache.DefaultExpiration
	if _, ok := c.subs[key]; ok {
		exp = gocache.NoExpiration
	}
	c.items.Set(key, v, exp)
	c.index(key, tags)
	return v, nil
}

// index заменяет теги ключа. Вызывается под c.mu.
func (c *Cache) index(key string, tags []Tag) {
	c.unindex(key)
	c.keyTags[key] = tags
	for _, t := range tags {
		keys, ok := c.byTag[t]
		if !ok {
			keys = map[string]struct{}{}
			c.byTag[t] = keys
		}
		keys[key] = struct{}{}
	}
}

// unindex вызывается под c.mu.
func (c *Cache) unindex(key string) {
	for _, t := range c.keyTags[key] {
		if keys, ok := c.byTag[t]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.byTag, t)
			}
		}
	}
	delete(c.keyTags, key)
}
