package filereader

import "compress/gzip"
import "errors"
import "os"
import "path/filepath"
import "strings"
import "testing"

func collect(t *testing.T, fr FileReader) ([]Record, []error) {
	t.Helper()

	var records []Record
	var errs []error
	for rec, err := range Records(fr) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}

func TestLineFileReader(t *testing.T) {
	fr := NewLineFileReader(strings.NewReader("one two\n\n  \nthree\r\nfour"), "mem")
	records, errs := collect(t, fr)

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := []struct{ id, text string }{
		{"1", "one two"},
		{"4", "three"},
		{"5", "four"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, w := range want {
		if records[i].Id != w.id || string(records[i].Raw) != w.text {
			t.Errorf("record %d = %s %q, want %s %q", i, records[i].Id, records[i].Raw, w.id, w.text)
		}
		if records[i].Source != "mem" {
			t.Errorf("record %d source = %q", i, records[i].Source)
		}
	}
}

func TestTrecFileReader(t *testing.T) {
	f, err := os.Open("testdata/sample.trec")
	if err != nil {
		t.Fatal(err)
	}
	fr := NewTrecFileReader(f, "testdata/sample.trec")
	defer fr.Close()

	records, errs := collect(t, fr)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if records[0].Id != "AP890101-0001" {
		t.Errorf("first id = %q", records[0].Id)
	}
	text := string(records[0].Raw)
	if !strings.Contains(text, "quick brown fox") || !strings.Contains(text, "$5.00") {
		t.Errorf("first text = %q", text)
	}
	if strings.Contains(text, "headline") || strings.Contains(text, "FILEID") {
		t.Errorf("markup outside TEXT leaked: %q", text)
	}

	if got := string(records[1].Raw); got != "First section.\nSecond section." {
		t.Errorf("second text = %q", got)
	}
	if len(records[2].Raw) != 0 {
		t.Errorf("document without TEXT has %q", records[2].Raw)
	}
}

func TestTrecFileReader_Unterminated(t *testing.T) {
	input := "<DOC>\n<DOCNO> X1 </DOCNO>\n<TEXT>\nfine\n</TEXT>\n</DOC>\n<DOC>\n<TEXT>\ncut off"
	fr := NewTrecFileReader(strings.NewReader(input), "mem")

	records, errs := collect(t, fr)
	if len(records) != 1 || records[0].Id != "X1" {
		t.Fatalf("records = %v", records)
	}
	if len(errs) != 1 {
		t.Fatalf("errors = %v", errs)
	}

	var malformed *MalformedRecordError
	if !errors.As(errs[0], &malformed) {
		t.Fatalf("error = %v, want *MalformedRecordError", errs[0])
	}
}

func TestTrecFileReader_StrayEnd(t *testing.T) {
	input := "</DOC>\n<DOC>\n<DOCNO>X2</DOCNO><TEXT>inline</TEXT>\n</DOC>\n"
	records, errs := collect(t, NewTrecFileReader(strings.NewReader(input), "mem"))

	if len(errs) != 0 || len(records) != 1 {
		t.Fatalf("records = %v, errors = %v", records, errs)
	}
	if records[0].Id != "X2" || string(records[0].Raw) != "inline" {
		t.Errorf("record = %s %q", records[0].Id, records[0].Raw)
	}
}

func writeGzip(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen(t *testing.T) {
	trec, err := os.ReadFile("testdata/sample.trec")
	if err != nil {
		t.Fatal(err)
	}
	lines, err := os.ReadFile("testdata/sample.txt")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		format string
		count  int
	}{
		{"plain trec, auto", "testdata/sample.trec", "auto", 3},
		{"plain lines, auto", "testdata/sample.txt", "", 3},
		{"trec read as lines", "testdata/sample.trec", "lines", 21},
		{"gzip trec, misleading name", writeGzip(t, "corpus.txt", trec), "auto", 3},
		{"gzip lines", writeGzip(t, "corpus.gz", lines), "LINES", 3},
	}

	for _, tt := range tests {
		fr, err := Open(tt.path, tt.format)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}

		records, errs := collect(t, fr)
		if len(errs) != 0 {
			t.Errorf("%s: unexpected errors %v", tt.name, errs)
		}
		if len(records) != tt.count {
			t.Errorf("%s: got %d records, want %d", tt.name, len(records), tt.count)
		}
		if fr.Path() != tt.path {
			t.Errorf("%s: path = %q", tt.name, fr.Path())
		}
		if err := fr.Close(); err != nil {
			t.Errorf("%s: close: %v", tt.name, err)
		}
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open("testdata/missing.trec", "trec"); err == nil {
		t.Error("expected an error for a missing file")
	}

	_, err := Open("testdata/sample.txt", "xml")
	var unknown *UnknownFormatError
	if !errors.As(err, &unknown) {
		t.Errorf("error = %v, want *UnknownFormatError", err)
	}
}
