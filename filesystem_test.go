package accio

import (
	"io"
	"io/fs"
	"syscall"
	"time"
)

// fakeFileSystem is an in-memory tree with injectable failures. Directory
// listings come back in insertion order.
type fakeFileSystem struct {
	nodes    map[string]*fakeNode
	openErr  map[string]error
	lstatErr map[string]error
	readErr  map[string]error

	opened []string
	open   int
}

type fakeNode struct {
	name     string
	mode     fs.FileMode
	children []string
}

func newFakeFileSystem(root string) *fakeFileSystem {
	f := &fakeFileSystem{
		nodes:    make(map[string]*fakeNode),
		openErr:  make(map[string]error),
		lstatErr: make(map[string]error),
		readErr:  make(map[string]error),
	}
	f.nodes[root] = &fakeNode{name: root, mode: fs.ModeDir | 0o755}
	return f
}

func (f *fakeFileSystem) add(parent, name string, mode fs.FileMode) string {
	path := JoinPath(parent, name)
	f.nodes[parent].children = append(f.nodes[parent].children, name)
	f.nodes[path] = &fakeNode{name: name, mode: mode}
	return path
}

func (f *fakeFileSystem) mkdir(parent, name string) string {
	return f.add(parent, name, fs.ModeDir|0o755)
}

func (f *fakeFileSystem) touch(parent, name string) string {
	return f.add(parent, name, 0o644)
}

func (f *fakeFileSystem) symlink(parent, name string) string {
	return f.add(parent, name, fs.ModeSymlink|0o777)
}

// listOnly adds a name to the parent's listing without a backing node, which
// makes it look like the entry vanished after readdir.
func (f *fakeFileSystem) listOnly(parent, name string) string {
	f.nodes[parent].children = append(f.nodes[parent].children, name)
	return JoinPath(parent, name)
}

func (f *fakeFileSystem) Lstat(path string) (fs.FileInfo, error) {
	if err, ok := f.lstatErr[path]; ok {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}

	node, ok := f.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}

	return fakeInfo{name: node.name, mode: node.mode}, nil
}

func (f *fakeFileSystem) OpenDir(path string) (DirHandle, error) {
	if err, ok := f.openErr[path]; ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}

	node, ok := f.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !node.mode.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: path, Err: syscall.ENOTDIR}
	}

	f.opened = append(f.opened, path)
	f.open++

	return &fakeDirHandle{fsys: f, path: path, node: node}, nil
}

type fakeDirHandle struct {
	fsys   *fakeFileSystem
	path   string
	node   *fakeNode
	offset int
	closed bool
}

func (h *fakeDirHandle) ReadDir(n int) ([]fs.DirEntry, error) {
	if h.offset >= len(h.node.children) {
		if err, ok := h.fsys.readErr[h.path]; ok {
			return nil, &fs.PathError{Op: "readdirent", Path: h.path, Err: err}
		}
		return nil, io.EOF
	}

	end := h.offset + n
	if end > len(h.node.children) {
		end = len(h.node.children)
	}

	entries := make([]fs.DirEntry, 0, end-h.offset)
	for _, name := range h.node.children[h.offset:end] {
		entries = append(entries, fakeEntry{name: name})
	}
	h.offset = end

	return entries, nil
}

func (h *fakeDirHandle) Close() error {
	if !h.closed {
		h.closed = true
		h.fsys.open--
	}
	return nil
}

type fakeEntry struct {
	name string
}

func (e fakeEntry) Name() string               { return e.name }
func (e fakeEntry) IsDir() bool                { return false }
func (e fakeEntry) Type() fs.FileMode          { return 0 }
func (e fakeEntry) Info() (fs.FileInfo, error) { return fakeInfo{name: e.name}, nil }

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }
