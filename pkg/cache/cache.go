package cache

import (
	"sync"
	"time"
)

// entry guarda um valor com seu prazo de expiração
type entry struct {
	value     any
	expiresAt time.Time
}

// Stats expõe os contadores de uso do cache
type Stats struct {
	Entries       int   `json:"entries"`
	Hits          int64 `json:"hits"`
	Misses        int64 `json:"misses"`
	Sets          int64 `json:"sets"`
	Deletes       int64 `json:"deletes"`
	TotalRequests int64 `json:"total_requests"`
}

// Cache é um cache em memória com TTL por entrada.
// Seguro para uso concorrente.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration

	hits    int64
	misses  int64
	sets    int64
	deletes int64
}

// New cria um cache com o TTL padrão informado
func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
	}
}

// Get retorna o valor da chave, se existir e ainda não expirou
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}

	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		c.misses++
		return nil, false
	}

	c.hits++
	return e.value, true
}

// Set armazena o valor com o TTL padrão
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL armazena o valor com um TTL específico
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	c.sets++
}

// Delete remove a chave do cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.deletes++
	}
}

// Clear remove todas as entradas do cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}

// Stats retorna os contadores atuais do cache.
// Entradas expiradas ainda não coletadas contam em Entries.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Stats{
		Entries:       len(c.entries),
		Hits:          c.hits,
		Misses:        c.misses,
		Sets:          c.sets,
		Deletes:       c.deletes,
		TotalRequests: c.hits + c.misses,
	}
}
