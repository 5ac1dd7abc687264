package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"javapy/internal/buildpipeline"
	"javapy/internal/diag"
	"javapy/internal/lexer"
	"javapy/internal/pycheck"
	"javapy/internal/source"
	"javapy/internal/trace"
	"javapy/internal/translator"
)

// Analyze translates in-memory text. name is used for display only.
// Any text yields a result; err is non-nil only when ctx is already done.
func Analyze(ctx context.Context, name, text string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		name = "<input>"
	}
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(text))
	return analyzeLoaded(ctx, fs, id, name, opts), nil
}

// AnalyzeFile loads path from disk and translates it.
func AnalyzeFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return analyzeLoaded(ctx, fs, id, fs.Get(id).FormatPath("relative", fs.BaseDir()), opts), nil
}

// analyzeLoaded runs scan → translate → verify for one file of fs.
// fs must not be modified concurrently.
func analyzeLoaded(ctx context.Context, fs *source.FileSet, id source.FileID, display string, opts Options) *Result {
	file := fs.Get(id)
	res := &Result{FileSet: fs, FileID: id, Path: display}

	ctx, span := trace.Child(ctx, trace.ScopeFile, "file:"+display)
	defer func() {
		span.WithExtra("cached", strconv.FormatBool(res.Cached)).
			WithExtra("diagnostics", strconv.Itoa(len(res.Lexical)+len(res.Syntax))).
			End("")
	}()

	key := cacheKey(file, opts)
	if opts.Cache != nil {
		var payload cachePayload
		// битая запись кэша - просто промах
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			payload.restore(res)
			buildpipeline.Emit(opts.Progress, buildpipeline.Event{
				File: display, Stage: buildpipeline.StageTranslate, Status: buildpipeline.StatusCached,
				Diagnostics: len(res.Lexical) + len(res.Syntax),
			})
			return res
		}
	}

	started := time.Now()
	stage := func(st buildpipeline.Stage, fn func()) {
		buildpipeline.Emit(opts.Progress, buildpipeline.Event{File: display, Stage: st, Status: buildpipeline.StatusWorking})
		t0 := time.Now()
		fn()
		d := time.Since(t0)
		res.Timings.Set(st, d)
		opts.Timer.Add(string(st), d)
	}

	stage(buildpipeline.StageScan, func() {
		_, scanSpan := trace.Child(ctx, trace.ScopePass, "scan")
		bag := diag.NewBag(opts.maxDiagnostics())
		res.Tokens = lexer.Scan(file, lexer.Options{
			Reporter:    diag.BagReporter{Bag: bag},
			MaxTokenLen: opts.MaxTokenLen,
		})
		res.Lexical = bag.Items()
		scanSpan.WithExtra("tokens", strconv.Itoa(len(res.Tokens))).End("")
	})

	stage(buildpipeline.StageTranslate, func() {
		tr := translator.New(translator.Options{
			StrictLoops:    opts.StrictLoops,
			MaxDiagnostics: opts.MaxDiagnostics,
		})
		out := tr.Translate(ctx, res.Tokens)
		res.Output = out.Output
		res.Syntax = out.Diagnostics
	})

	if opts.Verify {
		stage(buildpipeline.StageVerify, func() {
			_, vspan := trace.Child(ctx, trace.ScopePass, "verify")
			rep := pycheck.Check(res.Output)
			res.Verify = &rep
			vspan.WithExtra("ok", strconv.FormatBool(rep.OK)).End("")
		})
	}

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, payloadFromResult(res)); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache", "put failed: "+err.Error(), trace.CurrentSpan(ctx).SpanID)
		}
	}

	status := buildpipeline.StatusDone
	if res.HasErrors() {
		status = buildpipeline.StatusError
	}
	buildpipeline.Emit(opts.Progress, buildpipeline.Event{
		File: display, Stage: lastStage(opts), Status: status,
		Elapsed: time.Since(started), Diagnostics: len(res.Lexical) + len(res.Syntax),
	})
	return res
}

func lastStage(opts Options) buildpipeline.Stage {
	if opts.Verify {
		return buildpipeline.StageVerify
	}
	return buildpipeline.StageTranslate
}
