package filereader

import "bufio"
import "bytes"
import "fmt"
import "io"
import log "github.com/cihub/seelog"

const maxLineLength = 16 * 1024 * 1024

// LineFileReader treats every non-blank line as a record. Record ids are
// the 1-based line numbers.
type LineFileReader struct {
	path    string
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

func NewLineFileReader(r io.Reader, path string) *LineFileReader {
	fr := new(LineFileReader)
	fr.path = path
	fr.scanner = bufio.NewScanner(r)
	fr.scanner.Buffer(make([]byte, 64*1024), maxLineLength)
	if c, ok := r.(io.Closer); ok {
		fr.closer = c
	}
	return fr
}

func (fr *LineFileReader) Path() string {
	return fr.path
}

func (fr *LineFileReader) Read() (Record, error) {
	for fr.scanner.Scan() {
		fr.line++
		raw := bytes.TrimRight(fr.scanner.Bytes(), "\r")
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}

		return Record{
			Id:     fmt.Sprintf("%d", fr.line),
			Source: fr.path,
			Raw:    bytes.Clone(raw),
		}, nil
	}

	if err := fr.scanner.Err(); err != nil {
		log.Warnf("Stopped reading %s after line %d: %v", fr.path, fr.line, err)
		return Record{}, fmt.Errorf("reading %s: %w", fr.path, err)
	}
	return Record{}, io.EOF
}

func (fr *LineFileReader) Close() error {
	if fr.closer != nil {
		return fr.closer.Close()
	}
	return nil
}
