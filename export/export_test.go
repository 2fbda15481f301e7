package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, "uelrs ejkBh"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if buf.String() != "uelrs ejkBh" {
		t.Errorf("output = %q", buf.String())
	}
}

func readDocxDocument(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}

	want := map[string]bool{
		"[Content_Types].xml": false,
		"_rels/.rels":         false,
		"word/document.xml":   false,
	}
	var doc string
	for _, f := range zr.File {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open %s: %v", f.Name, err)
			}
			b, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				t.Fatal(err)
			}
			doc = string(b)
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("archive missing %s", name)
		}
	}
	return doc
}

func TestWriteDocx(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocx(&buf, "uelrs"); err != nil {
		t.Fatalf("WriteDocx: %v", err)
	}

	doc := readDocxDocument(t, buf.Bytes())
	if !strings.Contains(doc, `w:ascii="Kruti Dev 010"`) {
		t.Error("run font not set to Kruti Dev 010")
	}
	if !strings.Contains(doc, `w:cs="Kruti Dev 010"`) {
		t.Error("complex-script font not set to Kruti Dev 010")
	}
	if !strings.Contains(doc, ">uelrs</w:t>") {
		t.Errorf("document does not contain the text: %s", doc)
	}
}

func TestWriteDocxEscapesMarkup(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocx(&buf, `[k < "k & 'k`); err != nil {
		t.Fatalf("WriteDocx: %v", err)
	}

	doc := readDocxDocument(t, buf.Bytes())
	if strings.Contains(doc, `"k < `) {
		t.Error("markup characters not escaped")
	}
	if !strings.Contains(doc, "&lt;") || !strings.Contains(doc, "&amp;") {
		t.Errorf("expected escaped angle bracket and ampersand: %s", doc)
	}
}

func TestWriteDocxParagraphPerLine(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocx(&buf, "one\ntwo"); err != nil {
		t.Fatalf("WriteDocx: %v", err)
	}

	doc := readDocxDocument(t, buf.Bytes())
	if got := strings.Count(doc, "<w:p>"); got != 2 {
		t.Errorf("paragraph count = %d, want 2", got)
	}
}

func TestWriteDocxEmptyText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocx(&buf, ""); err != nil {
		t.Fatalf("WriteDocx: %v", err)
	}
	doc := readDocxDocument(t, buf.Bytes())
	if !strings.Contains(doc, "<w:p></w:p>") {
		t.Error("empty text should still produce one empty paragraph")
	}
}
