package filereader

import "errors"
import "fmt"
import "io"
import "iter"

// A Record is one unit of input text, still undecoded.
type Record struct {
	Id     string
	Source string
	Raw    []byte
}

func (r Record) String() string {
	return fmt.Sprintf("%s:%s (%d bytes)", r.Source, r.Id, len(r.Raw))
}

/*
A FileReader pulls records from a file, one per Read. Read returns io.EOF
after the last record. A *MalformedRecordError means one record was bad and
reading can continue; any other error ends the stream.
*/
type FileReader interface {
	Read() (Record, error)
	Path() string
	Close() error
}

// Records adapts a FileReader to a range-over-func sequence. Malformed
// records are yielded with their error and reading continues; any other
// error is yielded once and ends the sequence.
func Records(fr FileReader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := fr.Read()
			if errors.Is(err, io.EOF) {
				return
			}

			var malformed *MalformedRecordError
			if err != nil && !errors.As(err, &malformed) {
				yield(rec, err)
				return
			}

			if !yield(rec, err) {
				return
			}
		}
	}
}

// MalformedRecordError reports a record that could not be read or decoded
// as text. Offset is the byte offset of the problem within the record, or
// -1 when unknown.
type MalformedRecordError struct {
	Id     string
	Source string
	Offset int
	Reason string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	msg := fmt.Sprintf("malformed record %s in %s: %s", e.Id, e.Source, e.Reason)
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at byte %d", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
