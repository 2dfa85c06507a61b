// ================== cmd/loadtest/main.go ==================
//
// Constant-concurrency load generator for the todo API. Each worker sends
// GET requests against the list endpoint for the whole run and the summary
// reports throughput, failures, and mean latency.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

func main() {
	target := flag.String("target", "http://localhost:8080/api/todo", "URL to load")
	workers := flag.Int("workers", 100, "number of concurrent clients")
	duration := flag.Duration("duration", 30*time.Second, "how long to run")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	var (
		total    int64
		failed   int64
		totalLat int64 // nanoseconds
	)

	deadline := time.Now().Add(*duration)
	var wg sync.WaitGroup

	fmt.Printf("Running %d workers against %s for %v\n", *workers, *target, *duration)

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(deadline) {
				start := time.Now()
				resp, err := client.Get(*target)
				lat := time.Since(start)

				atomic.AddInt64(&total, 1)
				atomic.AddInt64(&totalLat, int64(lat))
				if err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}
				resp.Body.Close()
				if resp.StatusCode >= 400 {
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	wg.Wait()

	ok := total - failed
	fmt.Printf("requests: %d  ok: %d  failed: %d\n", total, ok, failed)
	if total > 0 {
		fmt.Printf("rps: %.1f  mean latency: %v\n",
			float64(total)/duration.Seconds(),
			time.Duration(totalLat/total))
	}
}
