package loader

import "io"

// PlainLoader handles markdown and plain text files, which are already
// in the headed-text form the extractor expects.
type PlainLoader struct{}

func (l *PlainLoader) Load(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
