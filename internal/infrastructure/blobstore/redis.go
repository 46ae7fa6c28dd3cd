// Package blobstore implementa la persistencia de documentos JSON del back
// office: compras, traslados, carrito y reglas de precio. Una colección lógica
// es un documento: se lee completo y se reescribe completo en cada mutación,
// no hay escrituras parciales.
package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.DocumentStore = (*RedisStore)(nil)

// RedisStore almacén clave-valor de blobs JSON sobre Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore construye el almacén. prefix antepone un espacio de nombres a
// cada clave ("pos" -> "pos:purchases").
func NewRedisStore(addr, password string, db int, prefix string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client, prefix: prefix}
}

// Ping verifica la conexión.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

// Load deserializa el documento de key en v. Clave ausente = colección vacía.
func (s *RedisStore) Load(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save serializa v y reescribe el documento completo (sin TTL: es el registro
// de negocio, no un caché).
func (s *RedisStore) Save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, s.key(key), payload, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
