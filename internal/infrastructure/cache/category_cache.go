package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

const (
	keyPrefix = "catalog:category:"

	// tombstone marca una entrada recién invalidada. Mientras existe, Set (SETNX) no puede
	// volver a escribir una lectura de BD hecha antes del Commit que invalidó.
	tombstone    = "-"
	tombstoneTTL = 10 * time.Second
)

// CategoryCache guarda categorías serializadas en Redis con TTL.
// Un fallo de Redis nunca rompe la operación: se registra y se trata como miss.
type CategoryCache struct {
	rdb redis.Cmdable
	ttl time.Duration
	log *logger.Logger
}

// NewCategoryCache construye la caché sobre un cliente Redis.
func NewCategoryCache(rdb redis.Cmdable, ttl time.Duration, log *logger.Logger) *CategoryCache {
	return &CategoryCache{rdb: rdb, ttl: ttl, log: log}
}

type cachedCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func key(id uuid.UUID) string { return keyPrefix + id.String() }

// Get devuelve la categoría cacheada y true, o nil y false si no está.
func (c *CategoryCache) Get(ctx context.Context, id uuid.UUID) (*entity.Category, bool) {
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("category_id", id.String()).Msg("leer caché de categoría")
		}
		return nil, false
	}
	if string(raw) == tombstone {
		return nil, false
	}
	var cc cachedCategory
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Warn().Err(err).Str("category_id", id.String()).Msg("entrada de caché ilegible")
		c.drop(ctx, id)
		return nil, false
	}
	category, err := entity.RestoreCategory(cc.ID, cc.Name, cc.Description, cc.IsActive, cc.CreatedAt)
	if err != nil {
		c.drop(ctx, id)
		return nil, false
	}
	return category, true
}

// Set guarda la categoría con el TTL configurado solo si la clave no existe:
// no pisa una entrada vigente ni una lápida de Invalidate.
func (c *CategoryCache) Set(ctx context.Context, category *entity.Category) {
	raw, err := json.Marshal(cachedCategory{
		ID:          category.ID(),
		Name:        category.Name(),
		Description: category.Description(),
		IsActive:    category.IsActive(),
		CreatedAt:   category.CreatedAt(),
	})
	if err != nil {
		return
	}
	if err := c.rdb.SetNX(ctx, key(category.ID()), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("category_id", category.ID().String()).Msg("escribir caché de categoría")
	}
}

// Invalidate reemplaza las entradas de los IDs dados por una lápida de vida corta.
func (c *CategoryCache) Invalidate(ctx context.Context, ids ...uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	_, err := c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			pipe.Set(ctx, key(id), tombstone, tombstoneTTL)
		}
		return nil
	})
	if err != nil {
		c.log.Warn().Err(err).Int("keys", len(ids)).Msg("invalidar caché de categorías")
	}
}

// drop borra una entrada ilegible para que la siguiente lectura la vuelva a poblar.
func (c *CategoryCache) drop(ctx context.Context, id uuid.UUID) {
	if err := c.rdb.Del(ctx, key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("category_id", id.String()).Msg("borrar entrada de caché")
	}
}
