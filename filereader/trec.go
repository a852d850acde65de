package filereader

import "bufio"
import "bytes"
import "fmt"
import "io"
import log "github.com/cihub/seelog"

var (
	docStart   = []byte("<DOC>")
	docEnd     = []byte("</DOC>")
	docnoStart = []byte("<DOCNO>")
	docnoEnd   = []byte("</DOCNO>")
	textStart  = []byte("<TEXT>")
	textEnd    = []byte("</TEXT>")
)

/*
TrecFileReader reads TREC formatted collections:

	<DOC>
	<DOCNO> AP890101-0001 </DOCNO>
	<TEXT>
	...
	</TEXT>
	</DOC>

Each DOC becomes one record whose id is the DOCNO and whose text is every
TEXT section of the document joined by newlines. Markup outside TEXT is
ignored. <DOC> and </DOC> are expected to open their own line.
*/
type TrecFileReader struct {
	path       string
	reader     *bufio.Reader
	closer     io.Closer
	docCounter int
}

func NewTrecFileReader(r io.Reader, path string) *TrecFileReader {
	fr := new(TrecFileReader)
	fr.path = path
	fr.reader = bufio.NewReader(r)
	if c, ok := r.(io.Closer); ok {
		fr.closer = c
	}
	return fr
}

func (fr *TrecFileReader) Path() string {
	return fr.path
}

// readLine returns the next line without its terminator.
func (fr *TrecFileReader) readLine() ([]byte, error) {
	line, err := fr.reader.ReadBytes('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	return bytes.TrimRight(line, "\r\n"), err
}

func (fr *TrecFileReader) Read() (Record, error) {
	var doc *bytes.Buffer

	for {
		line, err := fr.readLine()
		if err != nil {
			if err != io.EOF {
				return Record{}, fmt.Errorf("reading %s: %w", fr.path, err)
			}
			if doc != nil {
				fr.docCounter++
				return Record{}, &MalformedRecordError{
					Id:     fmt.Sprintf("#%d", fr.docCounter),
					Source: fr.path,
					Offset: -1,
					Reason: "document is missing </DOC>",
				}
			}
			return Record{}, io.EOF
		}

		trimmed := bytes.TrimSpace(line)
		switch {
		case bytes.HasPrefix(trimmed, docStart):
			if doc != nil {
				log.Warnf("%s: <DOC> inside a document, starting over", fr.path)
			}
			doc = new(bytes.Buffer)
			if rest := trimmed[len(docStart):]; len(rest) > 0 {
				doc.Write(rest)
				doc.WriteByte('\n')
			}

		case bytes.HasPrefix(trimmed, docEnd):
			if doc == nil {
				log.Warnf("%s: </DOC> before any <DOC>, ignoring", fr.path)
				continue
			}
			fr.docCounter++
			return fr.parseDoc(doc.Bytes()), nil

		case doc != nil:
			doc.Write(line)
			doc.WriteByte('\n')
		}
	}
}

func (fr *TrecFileReader) parseDoc(body []byte) Record {
	rec := Record{Source: fr.path}

	if start := bytes.Index(body, docnoStart); start >= 0 {
		rest := body[start+len(docnoStart):]
		if end := bytes.Index(rest, docnoEnd); end >= 0 {
			rec.Id = string(bytes.TrimSpace(rest[:end]))
		}
	}
	if rec.Id == "" {
		rec.Id = fmt.Sprintf("#%d", fr.docCounter)
	}

	var text bytes.Buffer
	for {
		start := bytes.Index(body, textStart)
		if start < 0 {
			break
		}
		body = body[start+len(textStart):]

		end := bytes.Index(body, textEnd)
		if end < 0 {
			end = len(body)
		}
		if text.Len() > 0 {
			text.WriteByte('\n')
		}
		text.Write(bytes.Trim(body[:end], "\r\n"))
		body = body[end:]
	}

	rec.Raw = text.Bytes()
	log.Debugf("Read document %s", rec)
	return rec
}

func (fr *TrecFileReader) Close() error {
	if fr.closer != nil {
		return fr.closer.Close()
	}
	return nil
}
