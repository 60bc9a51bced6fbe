// Command bench measures raw note throughput per storage backend. It is a
// development tool, not part of the shipped CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/peat"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	backends := flag.String("backends", "file,sqlite,memory", "Comma separated backends to measure")
	keep := flag.Bool("keep", false, "Keep the state directories after running")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	for _, backend := range splitList(*backends) {
		dir, err := os.MkdirTemp("", "peat_bench_"+backend+"_")
		if err != nil {
			panic(err)
		}
		if *keep {
			fmt.Printf("Keeping state dir for %s: %s\n", backend, dir)
		} else {
			defer os.RemoveAll(dir)
		}

		run(ctx, backend, dir, *count, logger)
	}
}

func run(ctx context.Context, backend, dir string, count int, logger *slog.Logger) {
	store, err := peat.Open(ctx, dir,
		peat.WithBackend(backend),
		peat.WithLogger(logger),
		peat.WithForceTemp(true),
	)
	if err != nil {
		fmt.Printf("%-8s open failed: %v\n", backend, err)
		return
	}
	defer store.Close()

	// 1. Write path: create and retitle every note.
	startWrite := time.Now()
	for i := 0; i < count; i++ {
		id := store.Create(ctx)
		store.Update(ctx, id, peat.Patch{
			Title:   peat.String(fmt.Sprintf("Note %d", i)),
			Content: peat.String(fmt.Sprintf("# Note %d\n\nGenerated for throughput measurement.", i)),
		})
	}
	writeDur := time.Since(startWrite)

	// 2. Cold read path: a fresh open replays the full load. Memory keeps
	// nothing between opens, so it is measured on the live store.
	reopened := store
	var openDur time.Duration
	if backend != peat.BackendMemory {
		startOpen := time.Now()
		reopened, err = peat.Open(ctx, dir,
			peat.WithBackend(backend),
			peat.WithLogger(logger),
			peat.WithForceTemp(true),
		)
		if err != nil {
			fmt.Printf("%-8s reopen failed: %v\n", backend, err)
			return
		}
		defer reopened.Close()
		openDur = time.Since(startOpen)
	}

	// 3. Search path: substring match over every title and body.
	startSearch := time.Now()
	matches := 0
	for range reopened.List("note 9") {
		matches++
	}
	searchDur := time.Since(startSearch)

	fmt.Printf("%-8s notes=%d write=%v open=%v search=%v (matches=%d)\n",
		backend, reopened.Len(), writeDur, openDur, searchDur, matches)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
