// Package tail follows growing log files.
//
// The game rewrites its logs in ways a plain read loop can't survive: a file
// may not exist yet when the watcher starts, gets truncated and recreated
// when a new game begins, and grows in bursts while one is running. A Tail
// absorbs all of that and delivers whole lines, restarting from the
// beginning of the file whenever it is recreated or shrinks.
package tail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Tail follows one file and delivers its lines in order.
type Tail struct {
	path  string
	lines chan string

	// read state, touched only by the run goroutine
	file    *os.File
	offset  int64
	partial []byte
}

// Follow starts tailing path from the beginning. The file does not need to
// exist yet; its directory does. The tail stops and closes its line channel
// when ctx is done.
func Follow(ctx context.Context, path string) (*Tail, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher for %q: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("could not watch %q: %w", filepath.Dir(path), err)
	}

	t := &Tail{path: path, lines: make(chan string, 64)}
	go t.run(ctx, watcher)
	return t, nil
}

// Lines returns the channel the tail delivers lines on. It is closed when
// the tail stops.
func (t *Tail) Lines() <-chan string { return t.lines }

func (t *Tail) run(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	defer close(t.lines)
	defer t.closeFile()

	t.reopen()
	t.drain(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(t.path) {
				continue
			}
			switch {
			case ev.Op.Has(fsnotify.Create):
				// recreated: a new game's log, start over
				t.reopen()
				t.drain(ctx)
			case ev.Op.Has(fsnotify.Write):
				if t.truncated() {
					t.reopen()
				}
				t.drain(ctx)
			case ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename):
				t.closeFile()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error on %q: %v", t.path, err)
		}
	}
}

func (t *Tail) closeFile() {
	if t.file != nil {
		t.file.Close()
		t.file = nil
	}
}

// reopen (re)opens the file from the beginning. A missing file is expected,
// not an error; the Create event will bring it back.
func (t *Tail) reopen() {
	t.closeFile()
	t.offset = 0
	t.partial = t.partial[:0]

	f, err := os.Open(t.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("could not open %q: %v", t.path, err)
		}
		return
	}
	t.file = f
}

// truncated reports whether the file shrank below what was already read.
func (t *Tail) truncated() bool {
	if t.file == nil {
		return false
	}
	info, err := t.file.Stat()
	if err != nil {
		return false
	}
	return info.Size() < t.offset
}

// drain reads everything currently available and delivers the complete
// lines, keeping an unterminated last line for the next round.
func (t *Tail) drain(ctx context.Context) {
	if t.file == nil {
		return
	}
	buf := make([]byte, 32*1024)
	for {
		n, err := t.file.Read(buf)
		if n > 0 {
			t.offset += int64(n)
			t.partial = append(t.partial, buf[:n]...)
			for {
				i := bytes.IndexByte(t.partial, '\n')
				if i < 0 {
					break
				}
				line := string(bytes.TrimRight(t.partial[:i], "\r"))
				t.partial = t.partial[i+1:]
				select {
				case t.lines <- line:
				case <-ctx.Done():
					return
				}
			}
		}
		if err != nil {
			// io.EOF means caught up; anything else will resolve on the
			// next event or reopen
			return
		}
	}
}
