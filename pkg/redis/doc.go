// Package redis opens the optional Redis connection used to share rendered
// fragments between server instances.
//
// Configuration comes from the environment (REDIS_URL and friends, see
// Config). Open pings the server and retries a few times before giving up,
// so a server starting next to a Redis container does not fail on the first
// refused connection:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//		client, err := redis.Open(ctx, cfg)
//		...
//	}
//
// Healthcheck plugs into the readiness endpoint and Shutdown into the
// server's shutdown hooks.
package redis
