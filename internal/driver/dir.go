package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"javapy/internal/buildpipeline"
	"javapy/internal/diag"
	"javapy/internal/source"
	"javapy/internal/trace"
)

// DirResult holds per-file results in path order.
type DirResult struct {
	Dir     string
	FileSet *source.FileSet
	Files   []*Result
}

// HasErrors reports whether any file has diagnostics or failed verification.
func (d *DirResult) HasErrors() bool {
	for _, r := range d.Files {
		if r.HasErrors() {
			return true
		}
	}
	return false
}

// listSourceFiles возвращает отсортированный список файлов с нужными расширениями.
func listSourceFiles(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// AnalyzeDir translates every matching file under dir in parallel.
// Files that cannot be read get a result with an IO diagnostic; the
// returned error is a walk failure or ctx cancellation.
func AnalyzeDir(ctx context.Context, dir string, opts Options) (*DirResult, error) {
	ctx, span := trace.Child(ctx, trace.ScopeDriver, "analyze_dir")
	defer span.End("")

	paths, err := listSourceFiles(dir, opts.extensions())
	if err != nil {
		return nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	out := &DirResult{Dir: dir, FileSet: fileSet, Files: make([]*Result, len(paths))}
	span.WithExtra("files", strconv.Itoa(len(paths)))
	if len(paths) == 0 {
		return out, nil
	}

	display := buildpipeline.NormalizeFiles(paths, dir)
	if len(display) != len(paths) {
		// пути после нормализации совпали, остаёмся на исходных
		display = paths
	}
	buildpipeline.EmitQueued(opts.Progress, display)

	// Загрузка последовательна: FileSet не потокобезопасен на запись.
	fileIDs := make([]source.FileID, len(paths))
	loadErrs := make([]error, len(paths))
	for i, path := range paths {
		fileIDs[i], loadErrs[i] = fileSet.Load(path)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(paths)))
	for i := range paths {
		i := i // per-iteration copy (go directive is 1.21; keeps Go 1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErrs[i] != nil {
				out.Files[i] = loadFailure(fileSet, display[i], loadErrs[i])
				buildpipeline.Emit(opts.Progress, buildpipeline.Event{
					File: display[i], Stage: buildpipeline.StageScan,
					Status: buildpipeline.StatusError, Err: loadErrs[i],
				})
				return nil
			}
			// индекс i уникален, мьютекс не нужен
			out.Files[i] = analyzeLoaded(gctx, fileSet, fileIDs[i], display[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}

func loadFailure(fs *source.FileSet, display string, err error) *Result {
	d := diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error())
	d.Lexeme = display
	return &Result{FileSet: fs, Path: display, IO: []diag.Diagnostic{d}}
}
