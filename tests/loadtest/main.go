package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
)

var (
	baseURL      = pflag.StringP("url", "u", "http://127.0.0.1:8090", "HotProspects base URL")
	numWorkers   = pflag.IntP("workers", "w", 50, "concurrent workers")
	testDuration = pflag.DurationP("duration", "t", 10*time.Second, "duration of each phase")
)

var (
	filters = []string{"all", "contacted", "uncontacted"}
	sorts   = []string{"none", "name", "date"}
	names   = []string{"Luka", "Amy", "Zed", "bob", "Anna", ""}
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

// idPool collects ids returned by /scan so later phases can toggle and remind them.
type idPool struct {
	mu  sync.Mutex
	ids []string
}

func (p *idPool) add(id string) {
	p.mu.Lock()
	p.ids = append(p.ids, id)
	p.mu.Unlock()
}

func (p *idPool) pick(rng *rand.Rand) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.ids) == 0 {
		return "", false
	}
	return p.ids[rng.Intn(len(p.ids))], true
}

func main() {
	pflag.Parse()

	fmt.Println("=== HotProspects Load Test ===")
	fmt.Printf("Target: %s | Workers: %d | Duration: %s\n\n", *baseURL, *numWorkers, *testDuration)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(*baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	pool := &idPool{}

	fmt.Println("\n--- Phase 1: Scanning (POST /scan) ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		return doScan(rng, pool)
	})

	fmt.Println("\n--- Phase 2: Mixed load (20% scan, 40% list, 30% toggle, 10% remind) ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.20:
			return doScan(rng, pool)
		case r < 0.60:
			return doList(rng)
		case r < 0.90:
			return doToggle(rng, pool)
		default:
			return doRemind(rng, pool)
		}
	})

	fmt.Println("\n--- Phase 3: Read-heavy load (90% list, 10% reminders) ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.90 {
			return doList(rng)
		}
		return doGet("/reminders")
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	slices.Sort(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		slices.Sort(s.latencies)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		fmt.Println("  no requests completed")
		return
	}
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

func doScan(rng *rand.Rand, pool *idPool) result {
	name := names[rng.Intn(len(names))]
	body := map[string]string{
		"payload": fmt.Sprintf("%s\nuser%d@example.com", name, rng.Intn(100000)),
	}
	// a few malformed scans keep the rejection path warm
	if rng.Float64() < 0.05 {
		body["payload"] = "OnlyOneLine"
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(*baseURL+"/scan", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /scan", 0, lat, true}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated {
		var created struct {
			ID string `json:"id"`
		}
		if json.NewDecoder(resp.Body).Decode(&created) == nil {
			pool.add(created.ID)
		}
		return result{"POST /scan", resp.StatusCode, lat, false}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return result{"POST /scan", resp.StatusCode, lat, resp.StatusCode != http.StatusUnprocessableEntity}
}

func doList(rng *rand.Rand) result {
	path := fmt.Sprintf("/prospects?filter=%s&sort=%s", filters[rng.Intn(len(filters))], sorts[rng.Intn(len(sorts))])
	r := doGet(path)
	r.endpoint = "GET /prospects"
	return r
}

func doToggle(rng *rand.Rand, pool *idPool) result {
	id, ok := pool.pick(rng)
	if !ok {
		return doList(rng)
	}
	return doPost("/toggle?id="+id, "POST /toggle", http.StatusOK)
}

func doRemind(rng *rand.Rand, pool *idPool) result {
	id, ok := pool.pick(rng)
	if !ok {
		return doList(rng)
	}
	r := doPost("/remind?id="+id, "POST /remind", http.StatusAccepted)
	// contacted prospects are refused with 409
	if r.status == http.StatusConflict {
		r.err = false
	}
	return r
}

func doGet(path string) result {
	endpoint := "GET " + path
	start := time.Now()
	resp, err := httpClient.Get(*baseURL + path)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func doPost(path, endpoint string, want int) result {
	start := time.Now()
	resp, err := httpClient.Post(*baseURL+path, "application/json", nil)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != want}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
