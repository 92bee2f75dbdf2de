package batch

import (
	"bytes"
	"sync"

	"awd-inspect/internal/awd"
	"awd-inspect/internal/report"
)

// Config holds settings for a batch run.
type Config struct {
	Workers int
}

// Result holds the outcome of processing one file.
type Result struct {
	Path    string
	Output  []byte // rendered report, printed as one unit
	Entries []ManifestEntry
	Err     error
}

// Run processes all paths using a worker pool. Results come back in input
// order so per-file output never interleaves.
func Run(cfg Config, paths []string, process func(path string) Result) []Result {
	results := make([]Result, len(paths))
	workers := max(cfg.Workers, 1)

	pathChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range pathChan {
				results[idx] = process(paths[idx])
			}
		}()
	}

	for i := range paths {
		pathChan <- i
	}
	close(pathChan)

	wg.Wait()
	return results
}

// Inspect decodes one file and renders its report. Decode failures are
// part of the report and also returned in Err.
func Inspect(path string, include awd.Include) Result {
	f, err := awd.Parse(path, include)

	var buf bytes.Buffer
	if rerr := report.Render(&buf, path, f, err); rerr != nil && err == nil {
		err = rerr
	}
	return Result{Path: path, Output: buf.Bytes(), Err: err}
}
