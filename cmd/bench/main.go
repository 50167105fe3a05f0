package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aretw0/notekeeper"
)

// bench measures the whole-file cost of every operation as the datastore grows.
func main() {
	count := flag.Int("count", 1000, "Number of notes to save")
	pretty := flag.Bool("pretty", false, "Write the datastore indented")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "notekeeper_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	service, err := notekeeper.New(benchDir,
		notekeeper.WithLogger(logger),
		notekeeper.WithPretty(*pretty),
	)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	// Every save reloads and rewrites the whole file, so this is quadratic.
	fmt.Printf("Saving %d notes in %s...\n", *count, benchDir)
	startSave := time.Now()
	for i := 0; i < *count; i++ {
		if _, err := service.SaveNote(ctx, strconv.Itoa(i), fmt.Sprintf("Note %d", i)); err != nil {
			panic(err)
		}
	}
	saveDuration := time.Since(startSave)

	startList := time.Now()
	list, err := service.ListNotes(ctx)
	if err != nil {
		panic(err)
	}
	listDuration := time.Since(startList)

	// The last ID is the worst case for the linear scan.
	startGet := time.Now()
	if _, err := service.GetNote(ctx, strconv.Itoa(*count-1)); err != nil {
		panic(err)
	}
	getDuration := time.Since(startGet)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", len(list))
	fmt.Printf("  Save (total): %v\n", saveDuration)
	fmt.Printf("  Save (avg):   %v\n", saveDuration/time.Duration(max(*count, 1)))
	fmt.Printf("  List:         %v\n", listDuration)
	fmt.Printf("  Get (last):   %v\n", getDuration)
	fmt.Printf("--------------------------------------------------\n")
}
