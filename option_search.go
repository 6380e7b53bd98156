package accio

// SearchOption represents options for search operations
type SearchOption func(*searchOptions)

type searchOptions struct {
	fileSystem FileSystem
	onSkip     SkipFunc
	queueLimit int
	readBatch  int
}

// defaultSearchOptions returns default search options
func defaultSearchOptions() *searchOptions {
	return &searchOptions{
		fileSystem: osFileSystem{},
		onSkip:     nil,
		queueLimit: 0,   // No limit
		readBatch:  128, // Entries per ReadDir call
	}
}

func newSearchOptions(options []SearchOption) *searchOptions {
	opts := defaultSearchOptions()
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

// WithFileSystem replaces the operating system as the source of directory listings
func WithFileSystem(fsys FileSystem) SearchOption {
	return func(opts *searchOptions) {
		if fsys != nil {
			opts.fileSystem = fsys
		}
	}
}

// WithSkipHandler registers a callback for directories and entries skipped
// because of a recoverable failure
func WithSkipHandler(handler SkipFunc) SearchOption {
	return func(opts *searchOptions) {
		opts.onSkip = handler
	}
}

// WithQueueLimit caps the number of pending directories. Exceeding it aborts
// the search with an allocation failure.
func WithQueueLimit(limit int) SearchOption {
	return func(opts *searchOptions) {
		opts.queueLimit = limit
	}
}

// WithReadBatch sets how many entries are read from a directory at once
func WithReadBatch(size int) SearchOption {
	return func(opts *searchOptions) {
		if size > 0 {
			opts.readBatch = size
		}
	}
}
