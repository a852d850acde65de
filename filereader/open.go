package filereader

import "bufio"
import "bytes"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strings"
import log "github.com/cihub/seelog"

var gzipMagic = []byte{0x1f, 0x8b}

// Formats accepted by Open.
const (
	FormatAuto  = "auto"
	FormatLines = "lines"
	FormatTrec  = "trec"
)

// UnknownFormatError is returned by Open for a format it cannot read.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown input format %q (known: %s, %s, %s)",
		e.Format, FormatAuto, FormatLines, FormatTrec)
}

// multiCloser closes the decompressor and then the file under it.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

/*
Open opens path for reading records in the given format. Gzip compressed
files are detected by their magic bytes, whatever their name. The auto
format picks trec when the start of the (decompressed) file holds a <DOC>
tag and lines otherwise.
*/
func Open(path, format string) (FileReader, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "", FormatAuto, FormatLines, FormatTrec:
	default:
		return nil, &UnknownFormatError{Format: format}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}

	r, err := decompress(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	buffered := bufio.NewReader(r)
	if format == "" || format == FormatAuto {
		format = sniffFormat(buffered)
		log.Debugf("Detected %s format for %s", format, path)
	}

	src := &multiCloser{Reader: buffered, closers: []io.Closer{file}}
	if gz, ok := r.(*gzip.Reader); ok {
		src.closers = []io.Closer{gz, file}
	}

	if format == FormatTrec {
		return NewTrecFileReader(src, path), nil
	}
	return NewLineFileReader(src, path), nil
}

func decompress(file *os.File) (io.Reader, error) {
	magic := make([]byte, len(gzipMagic))
	n, err := io.ReadFull(file, magic)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if n == len(gzipMagic) && bytes.Equal(magic, gzipMagic) {
		log.Debugf("Reading %s as gzip", file.Name())
		return gzip.NewReader(file)
	}
	return file, nil
}

func sniffFormat(r *bufio.Reader) string {
	head, _ := r.Peek(4096)
	if bytes.Contains(head, docStart) {
		return FormatTrec
	}
	return FormatLines
}
