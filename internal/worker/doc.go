// Package worker implements the content worker lifecycle and Redis Streams integration.
//
// The worker reads page render requests from a Redis Stream, renders them with
// the content renderer, stores the latest result per page and publishes it to
// the result stream.
//
// Example usage:
//
//	cfg, _ := config.Load()
//	redisClient := redis.NewClient(&redis.Options{...})
//	renderer := content.NewRenderer(content.Options{CELEnabled: cfg.CELEnabled}, logger)
//
//	worker := worker.NewWorker(cfg, redisClient, renderer, eventBus, resultStore, logger)
//	if err := worker.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer worker.Stop(10 * time.Second)
//
// Each stream message carries a JSON render request in its "data" field:
//
//	{
//	  "request_id": "optional, generated when empty",
//	  "domain": "austinroofing.com",
//	  "page": "roof-repair",
//	  "vars": {"city": "Austin"},
//	  "fields": [{"name": "title", "template": "{Roof|Roofing} help in {{city}}", "seed_suffix": "-title"}],
//	  "layout": "<h1>{{fields.title}}</h1>"
//	}
//
// Failed requests are published to "<result stream>.errors". Every message is
// acknowledged, including ones that cannot be parsed.
//
// Health checks are provided via a separate HTTP server:
//
//	healthServer := worker.NewHealthServer(8083, redisClient, logger)
//	healthServer.Start()
//	defer healthServer.Stop()
package worker
