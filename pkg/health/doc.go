// Package health serves the liveness and readiness probes.
//
// Liveness only proves the process answers. Readiness runs the registered
// checks concurrently: the blog store has loaded its posts, and Redis
// answers a ping when it is configured.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"blog":  store.Healthcheck,
//		"redis": redis.Healthcheck(client),
//	}))
//
// Both handlers answer "OK" as plain text, or JSON when the request asks for
// it with ?format=json or an Accept header.
package health
