package lib

import (
	"cafe/src/config"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// GetRedisClient returns nil when REDIS_HOST is not configured.
func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := config.GetRedisHost()
	if redisHost == "" {
		return nil
	}
	var opt *redis.Options
	if strings.Contains(redisHost, "://") {
		parsed, err := redis.ParseURL(redisHost)
		if err != nil {
			log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
			return nil
		}
		opt = parsed
	} else {
		opt = &redis.Options{Addr: redisHost}
	}
	redisClient = redis.NewClient(opt)
	return redisClient
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}
