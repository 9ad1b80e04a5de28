package document

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	"foundry-playlist-converter/internal/logging"
	"foundry-playlist-converter/internal/playlist"
)

// maxTitleWorkers caps concurrent tag reads.
const maxTitleWorkers = 16

// titleWorkersEnv fixes the number of concurrent tag reads.
const titleWorkersEnv = "TAG_WORKERS"

// titleWorkers returns the tag reader pool size: TAG_WORKERS when it is a
// positive integer, otherwise 2 per GOMAXPROCS. Either way it is capped at
// limit. GOMAXPROCS follows container CPU limits, NumCPU does not.
func titleWorkers(limit int) int {
	n := runtime.GOMAXPROCS(0) * 2
	if v, err := strconv.Atoi(os.Getenv(titleWorkersEnv)); err == nil && v > 0 {
		n = v
	}
	return max(1, min(n, limit))
}

// names returns the sound name for every entry, in entry order. Tag titles
// are looked up concurrently; fn must be safe for concurrent use.
func (w *Writer) names(entries []playlist.Entry) []string {
	names := make([]string, len(entries))
	if w.title == nil {
		for i, entry := range entries {
			names[i] = DisplayName(entry.Path)
		}
		return names
	}

	numWorkers := min(titleWorkers(maxTitleWorkers), len(entries))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				names[i] = w.safeSoundName(entries[i].Path)
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return names
}

// safeSoundName is soundName for worker goroutines, where a panic in the
// title func would otherwise kill the process. It falls back to the file name.
func (w *Writer) safeSoundName(path string) (name string) {
	defer func() {
		if r := recover(); r != nil {
			logging.Warn("Reading the title of %s panicked, using file name: %v", path, r)
			name = DisplayName(path)
		}
	}()
	return w.soundName(path)
}
