package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jsopt/internal/diag"
	"jsopt/internal/lexer"
	"jsopt/internal/node"
	"jsopt/internal/source"
)

// TokenizeDirResult holds the outcome for one file of a directory walk.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Arena  *node.Arena // nil when the file failed to load
	Bag    *diag.Bag
}

// Close releases every arena in results.
func CloseAll(results []TokenizeDirResult) {
	for i := range results {
		if results[i].Arena != nil {
			results[i].Arena.Close()
		}
	}
}

// listJSFiles returns the sorted list of JavaScript files under dir.
func listJSFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch {
		case strings.HasSuffix(path, ".js"),
			strings.HasSuffix(path, ".mjs"),
			strings.HasSuffix(path, ".cjs"):
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir scans every JavaScript file under dir, one goroutine and one
// arena per file. Arenas admit no concurrent append, but they share nothing,
// so parallelism across files is free. Results come back in the sorted
// file order regardless of scheduling.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listJSFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading mutates the shared FileSet, so it happens up front on one
	// goroutine; the parallel phase only reads.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			arena, err := node.NewArena(0)
			if err != nil {
				return err
			}

			reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
			lexer.New(fileSet.Get(fileID), arena, lexer.Options{Reporter: reporter}).Run()
			arena.TokenEnd = arena.Len()

			// Slot i is this goroutine's alone; no mutex needed.
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Arena:  arena,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		CloseAll(results)
		return nil, nil, err
	}
	return fileSet, results, nil
}
