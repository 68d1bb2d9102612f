package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetSet(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(c *Cache)
		key      string
		wantOK   bool
		wantVal  any
		validate func(t *testing.T, c *Cache)
	}{
		{
			name: "Chave existente dentro do TTL - deve retornar o valor",
			setup: func(c *Cache) {
				c.Set("earnings:acc1:2024-01-15", 42)
			},
			key:     "earnings:acc1:2024-01-15",
			wantOK:  true,
			wantVal: 42,
		},
		{
			name:   "Chave inexistente - deve retornar miss",
			setup:  func(c *Cache) {},
			key:    "earnings:acc2:2024-01-15",
			wantOK: false,
			validate: func(t *testing.T, c *Cache) {
				stats := c.Stats()
				assert.Equal(t, int64(0), stats.Hits)
				assert.Equal(t, int64(1), stats.Misses)
			},
		},
		{
			name: "Chave expirada - deve retornar miss e remover a entrada",
			setup: func(c *Cache) {
				c.SetWithTTL("earnings:acc3:2024-01-15", 7, -time.Second)
			},
			key:    "earnings:acc3:2024-01-15",
			wantOK: false,
			validate: func(t *testing.T, c *Cache) {
				stats := c.Stats()
				assert.Equal(t, 0, stats.Entries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(time.Minute)
			tt.setup(c)

			val, ok := c.Get(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantVal, val)
			}

			if tt.validate != nil {
				tt.validate(t, c)
			}
		})
	}
}

func TestCache_Stats(t *testing.T) {
	c := New(time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Get("a")
	c.Get("nao-existe")
	c.Delete("b")
	c.Delete("b") // segunda remoção não conta

	stats := c.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(2), stats.Sets)
	assert.Equal(t, int64(1), stats.Deletes)
	assert.Equal(t, int64(3), stats.TotalRequests)
}

func TestCache_Clear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()

	assert.Equal(t, 0, c.Stats().Entries)
	_, ok := c.Get("a")
	assert.False(t, ok)
}
