package favorites

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"tripchat/config"
)

// Open returns the store selected by the favorites backend setting. An
// unreachable Redis is logged; the store keeps retrying on each call.
func Open(ctx context.Context, fav config.FavoritesConfig, rc config.RedisConfig) Store {
	if fav.Backend != "redis" {
		return NewFileStore(fav.File)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis ping failed: %v", err)
	}
	return NewRedisStore(client, rc.KeyPrefix)
}
