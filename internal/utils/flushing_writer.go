package utils

import (
	"io"
	"sync"
)

// flushableWriter matches buffered writers exposing an explicit flush.
type flushableWriter interface {
	Flush() error
}

// syncableWriter matches file-backed writers such as os.Stdout.
type syncableWriter interface {
	Sync() error
}

// FlushingWriter serializes writes to the progress stream and pushes each
// write through to the terminal so operators see consolidation progress
// as it happens rather than when buffers fill.
type FlushingWriter struct {
	destination io.Writer
	mutex       sync.Mutex
}

// NewFlushingWriter wraps destination so every write is flushed immediately.
// Already-wrapped writers are returned unchanged.
func NewFlushingWriter(destination io.Writer) io.Writer {
	if destination == nil {
		return nil
	}
	if _, alreadyWrapped := destination.(*FlushingWriter); alreadyWrapped {
		return destination
	}
	return &FlushingWriter{destination: destination}
}

// Write delegates to the wrapped writer and flushes or syncs it when the
// writer supports either.
func (progressWriter *FlushingWriter) Write(data []byte) (int, error) {
	if progressWriter == nil || progressWriter.destination == nil {
		return 0, nil
	}

	progressWriter.mutex.Lock()
	defer progressWriter.mutex.Unlock()

	bytesWritten, writeError := progressWriter.destination.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	switch typedWriter := progressWriter.destination.(type) {
	case flushableWriter:
		if flushError := typedWriter.Flush(); flushError != nil {
			return bytesWritten, flushError
		}
	case syncableWriter:
		// Pipes and some terminals reject fsync; the write itself already
		// reached the descriptor, so sync failures are not surfaced.
		_ = typedWriter.Sync()
	}

	return bytesWritten, nil
}
