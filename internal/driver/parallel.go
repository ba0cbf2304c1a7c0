package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"safefloat/internal/diag"
	"safefloat/internal/exact"
	"safefloat/internal/source"
)

// scanFileResult содержит результат обработки одного файла
type scanFileResult struct {
	Path     string
	FileID   source.FileID
	Bag      *diag.Bag
	Literals []Literal
	Cached   bool
}

// ListGoFiles возвращает отсортированный список *.go файлов в директории,
// пропуская testdata, vendor и каталоги на "_" или ".".
func ListGoFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata" || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".go") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ScanDir validates literal arguments of safefloat calls in every Go file
// under dir, in parallel.
func ScanDir(ctx context.Context, dir string, opts Options) (*Result, error) {
	if opts.ImportPath == "" {
		opts.ImportPath = DefaultImportPath
	}

	idx := opts.Timer.Begin("list")
	files, err := ListGoFiles(dir)
	opts.Timer.End(idx, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	res := newResult(fileSet, opts)
	if len(files) == 0 {
		return res, nil
	}

	// Предзагружаем все файлы
	idx = opts.Timer.Begin("load")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
		id, err := fileSet.Load(path, source.KindGo)
		if err != nil {
			loadErrors[i] = err
			id = fileSet.AddVirtual(path, source.KindGo, nil)
		}
		fileIDs[i] = id
	}
	opts.Timer.End(idx, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]scanFileResult, len(files))

	idx = opts.Timer.Begin("scan")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			results[i] = scanFileResult{Path: path, FileID: fileIDs[i], Bag: bag}

			if loadErr, hadError := loadErrors[i]; hadError {
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFile,
					source.Span{File: fileIDs[i]}, "failed to load file: "+loadErr.Error()).Emit()
				emit(opts.Progress, Event{File: path, Status: StatusError})
				return nil
			}

			started := time.Now()
			file := fileSet.Get(fileIDs[i])
			payload, cached := scanSites(file, path, opts)
			results[i].Cached = cached

			emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusWorking, Cached: cached})
			r := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
			for _, pe := range payload.ParseErrors {
				off := min(pe.Offset, uint32(len(file.Content))) //nolint:gosec // G115: file size is checked on Add.
				diag.ReportError(r, diag.ScnParseError, source.Span{File: file.ID, Start: off, End: off}, pe.Msg).Emit()
			}
			for _, s := range payload.Sites {
				span := source.Span{File: file.ID, Start: s.Start, End: s.End}
				lit := CheckLiteral(r, span, s.Text, exact.Precision(s.Precision), s.Exact)
				results[i].Literals = append(results[i].Literals, lit)
			}

			status := StatusDone
			if bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: status, Cached: cached, Elapsed: time.Since(started)})
			log.Debug().Str("file", path).Int("literals", len(payload.Sites)).Bool("cached", cached).Msg("scanned")
			return nil
		})
	}

	// Ждём завершения всех горутин
	err = g.Wait()
	cachedCount := 0
	for _, fr := range results {
		if fr.Bag == nil {
			continue
		}
		if fr.Cached {
			cachedCount++
		}
		res.Bag.Merge(fr.Bag)
		res.Literals = append(res.Literals, fr.Literals...)
	}
	opts.Timer.End(idx, fmt.Sprintf("%d files, %d cached", len(files), cachedCount))
	return res, err
}

// scanSites returns the call sites of file, from the cache when possible.
func scanSites(file *source.File, path string, opts Options) (ScanPayload, bool) {
	key := cacheKey(file.Hash, opts.ImportPath)

	if opts.Cache != nil {
		emit(opts.Progress, Event{File: path, Stage: StageCache, Status: StatusWorking})
		var payload ScanPayload
		ok, err := opts.Cache.Get(key, &payload)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("cache read failed")
		}
		if ok {
			return payload, true
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	sites, parseErrs := findCallSites(path, file.Content, opts.ImportPath)
	payload := ScanPayload{
		Path:        path,
		ContentHash: file.Hash,
		Sites:       sites,
		ParseErrors: parseErrs,
	}
	if opts.Cache != nil {
		if err := opts.Cache.Put(key, &payload); err != nil {
			log.Warn().Err(err).Str("file", path).Msg("cache write failed")
		}
	}
	return payload, false
}
