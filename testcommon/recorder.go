package testcommon

import "io"

// RecordingReader counts the bytes handed out by the wrapped reader.
type RecordingReader struct {
	R         io.Reader
	BytesRead int
}

func (r *RecordingReader) Read(p []byte) (int, error) {
	n, err := r.R.Read(p)
	r.BytesRead += n
	return n, err
}
