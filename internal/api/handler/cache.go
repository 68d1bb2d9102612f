package handler

import (
	"net/http"

	"github.com/Myudi422/backend-adsense/pkg/cache"
	"github.com/Myudi422/backend-adsense/pkg/log"
)

// CacheStats retorna os contadores do cache de respostas
func CacheStats(responseCache *cache.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, responseCache.Stats())
	})
}

// CacheClear esvazia o cache de respostas
func CacheClear(responseCache *cache.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("cache: clearing response cache")

		responseCache.Clear()

		writeJSON(w, map[string]any{
			"message": "cache cleared",
		})
	})
}
