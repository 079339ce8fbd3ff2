package vis

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Editor is the top-level facade composing the piece table, the
// change/action/history machinery, and the append cache. An Editor is not
// safe for concurrent use; callers must serialize all operations on one
// Editor themselves (see spec §5).
type Editor struct {
	begin, end *piece

	appendBufs       *backingBuffer // head of the append-buffer chain
	original         *backingBuffer // mmap of the loaded file, nil if none
	originalMapping  []byte         // raw mapping to unmap on Close
	totalAppendBytes int

	cache *piece
	history

	size int64

	maxBufferBytes int
	bufferMin      int
	saveMode       os.FileMode
	logger         Logger
	metrics        MetricsRecorder

	closed bool
}

// Option configures an Editor at construction time.
type Option func(*Editor)

// WithLogger installs a structured logger; the default is NopLogger.
func WithLogger(l Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics installs a metrics recorder; the default is NopMetrics.
func WithMetrics(m MetricsRecorder) Option {
	return func(e *Editor) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithMaxBufferBytes caps total append-buffer allocation; 0 (the default)
// means unlimited. Exceeding the cap surfaces ErrOutOfMemory instead of
// letting Go's allocator panic — see SPEC_FULL.md §7.
func WithMaxBufferBytes(n int) Option {
	return func(e *Editor) { e.maxBufferBytes = n }
}

// WithBufferMin overrides the minimum capacity of a heap-allocated append
// buffer (default DefaultBufferMin). n <= 0 is ignored.
func WithBufferMin(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.bufferMin = n
		}
	}
}

// WithSaveMode overrides the file mode Save uses for the temp file it
// writes before renaming over the destination path (default 0600).
func WithSaveMode(mode os.FileMode) Option {
	return func(e *Editor) { e.saveMode = mode }
}

func newEmptyEditor(opts ...Option) *Editor {
	e := &Editor{logger: NopLogger, metrics: NopMetrics, bufferMin: DefaultBufferMin, saveMode: 0600}
	e.begin, e.end = newSentinel(), newSentinel()
	e.begin.next = e.end
	e.end.prev = e.begin
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load loads path into a new Editor, or builds an empty document when
// path is "". The file is opened read-only and memory-mapped whole — the
// core never partially loads a file (spec §1 Non-goals).
func Load(path string, opts ...Option) (*Editor, error) {
	e := newEmptyEditor(opts...)
	if path == "" {
		e.logger.Infow("loaded empty document")
		return e, nil
	}

	f, err := os.Open(path)
	if err != nil {
		e.logger.Errorw("load: open failed", "path", path, "err", err)
		return nil, errors.Wrapf(err, "vis: load %q", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		e.logger.Errorw("load: stat failed", "path", path, "err", err)
		return nil, errors.Wrapf(err, "vis: stat %q", path)
	}
	if !fi.Mode().IsRegular() {
		e.logger.Errorw("load: not a regular file", "path", path, "err", ErrNotRegularFile)
		return nil, errors.Wrapf(ErrNotRegularFile, "vis: load %q", path)
	}

	size := fi.Size()
	mapping, err := mmapReadOnly(f, size)
	if err != nil {
		e.logger.Errorw("load: mmap failed", "path", path, "size", size, "err", err)
		return nil, errors.Wrapf(err, "vis: mmap %q", path)
	}

	if size > 0 {
		e.original = &backingBuffer{content: mapping, used: int(size), original: true}
		e.originalMapping = mapping
		p := &piece{buf: e.original, off: 0, len: int(size)}
		p.prev, p.next = e.begin, e.end
		e.begin.next = p
		e.end.prev = p
		e.size = size
	}

	e.logger.Infow("loaded document", "path", path, "size", size)
	return e, nil
}

// Close releases resources Go's garbage collector cannot reclaim on its
// own — the memory mapping of the originally loaded file.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.originalMapping != nil {
		if err := munmap(e.originalMapping); err != nil {
			e.logger.Errorw("close: munmap failed", "err", err)
			return errors.Wrap(err, "vis: close")
		}
		e.originalMapping = nil
	}
	return nil
}

// Size returns the current document size in bytes.
func (e *Editor) Size() int64 { return e.size }

// Modified reports whether the document has unsaved changes.
func (e *Editor) Modified() bool { return e.history.modified() }

// Snapshot ends the current action and disables the append cache, so the
// next mutation starts a fresh, independently undoable action.
func (e *Editor) Snapshot() {
	e.history.snapshot()
	e.cache = nil
}

// Undo reverts the most recent action, if any, and reports whether there
// was one to revert.
func (e *Editor) Undo() bool {
	ok := e.history.undoOnce()
	if ok {
		e.cache = nil
		e.recomputeSizeAfterHistoryOp()
		e.logger.Infow("undo", "size", e.size)
	}
	e.observe()
	return ok
}

// Redo re-applies the most recently undone action, if any.
func (e *Editor) Redo() bool {
	ok := e.history.redoOnce()
	if ok {
		e.cache = nil
		e.recomputeSizeAfterHistoryOp()
		e.logger.Infow("redo", "size", e.size)
	}
	e.observe()
	return ok
}

// recomputeSizeAfterHistoryOp resyncs e.size after an undo or redo. The
// swap itself already relinks the piece chain; Insert/Delete/cache keep
// e.size incremental on the forward path, but undo/redo bypass those call
// sites, so size is rederived from the live chain here instead.
func (e *Editor) recomputeSizeAfterHistoryOp() {
	var total int64
	for p := e.begin.next; p != e.end; p = p.next {
		total += int64(p.len)
	}
	e.size = total
}

// storeBytes copies data into the head append buffer, growing the chain
// if needed, and returns the buffer and offset the copy landed at.
func (e *Editor) storeBytes(data []byte) (*backingBuffer, int, error) {
	head := e.appendBufs
	if head == nil || head.remaining() < len(data) {
		capacity := len(data)
		if capacity < e.bufferMin {
			capacity = e.bufferMin
		}
		if e.maxBufferBytes > 0 && e.totalAppendBytes+capacity > e.maxBufferBytes {
			e.logger.Errorw("store: out of memory", "n", len(data), "err", ErrOutOfMemory)
			return nil, 0, ErrOutOfMemory
		}
		nb := newAppendBuffer(capacity, e.bufferMin)
		nb.next = e.appendBufs
		e.appendBufs = nb
		e.totalAppendBytes += nb.capacity()
		head = nb
	}
	off := head.store(data)
	return head, off, nil
}

func (e *Editor) pieceCount() int {
	n := 0
	for p := e.begin.next; p != e.end; p = p.next {
		n++
	}
	return n
}

func (e *Editor) observe() {
	undoDepth, redoDepth := 0, 0
	for a := e.history.undo; a != nil; a = a.next {
		undoDepth++
	}
	for a := e.history.redo; a != nil; a = a.next {
		redoDepth++
	}
	e.metrics.Observe(Stats{
		Pieces:            e.pieceCount(),
		AppendBufferBytes: int64(e.totalAppendBytes),
		UndoDepth:         undoDepth,
		RedoDepth:         redoDepth,
	})
}

// Save writes the document to path via the temp-file-then-rename pattern:
// a sibling ".<basename>.tmp" file is truncated to size, mapped, and
// filled via the callback iterator, then renamed over path.
func (e *Editor) Save(path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmpPath := filepath.Join(dir, "."+base+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_RDWR|os.O_TRUNC, e.saveMode)
	if err != nil {
		e.logger.Errorw("save: open temp file failed", "path", tmpPath, "err", err)
		return errors.Wrapf(err, "vis: save %q", path)
	}

	if err := e.writeInto(f); err != nil {
		f.Close()
		os.Remove(tmpPath)
		e.logger.Errorw("save: write failed", "path", path, "err", err)
		return errors.Wrapf(err, "vis: save %q", path)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		e.logger.Errorw("save: close temp file failed", "path", tmpPath, "err", err)
		return errors.Wrapf(err, "vis: save %q", path)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		e.logger.Errorw("save: rename failed", "from", tmpPath, "to", path, "err", err)
		return errors.Wrapf(err, "vis: save %q", path)
	}

	e.history.markSaved()
	e.Snapshot()
	e.logger.Infow("saved document", "path", path, "size", e.size)
	return nil
}

func (e *Editor) writeInto(f *os.File) error {
	if err := f.Truncate(e.size); err != nil {
		return err
	}
	if e.size == 0 {
		return nil
	}
	mapping, err := mmapReadWrite(f, e.size)
	if err != nil {
		return err
	}
	defer munmap(mapping)

	if err := e.Iterate(0, func(pos int64, b []byte) bool {
		copy(mapping[pos:], b)
		return true
	}); err != nil {
		return err
	}
	if err := msync(mapping); err != nil {
		e.logger.Errorw("save: msync failed", "err", err)
		return err
	}
	return nil
}
