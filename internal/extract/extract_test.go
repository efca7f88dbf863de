package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func zipWithEntry(t *testing.T, name string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("<w:document/>")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeMimeType(t *testing.T) {
	docxZip := zipWithEntry(t, "word/document.xml")
	plainZip := zipWithEntry(t, "notes.txt")

	cases := []struct {
		name     string
		mime     string
		fileName string
		data     []byte
		want     string
	}{
		{name: "pdf_with_charset", mime: "application/pdf; charset=binary", fileName: "cv.pdf", want: mimePDF},
		{name: "zip_sniffed_as_docx", mime: "application/zip", fileName: "upload.bin", data: docxZip, want: mimeDOCX},
		{name: "zip_by_extension", mime: "application/zip", fileName: "upload.docx", data: plainZip, want: mimeDOCX},
		{name: "plain_zip_stays_zip", mime: "application/zip", fileName: "notes.zip", data: plainZip, want: "application/zip"},
		{name: "missing_mime_uses_extension", mime: "", fileName: "upload.pdf", want: mimePDF},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeMimeType(tc.mime, tc.fileName, tc.data); got != tc.want {
				t.Fatalf("normalizeMimeType = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTextFromBytesUnsupported(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte("hello"), "image/png", "photo.png")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestTextFromBytesPlainText(t *testing.T) {
	got, err := TextFromBytes(context.Background(), []byte("plain resume text"), "text/plain", "cv.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "plain resume text" {
		t.Fatalf("got %q", got)
	}
}

func TestSupported(t *testing.T) {
	if !Supported("application/pdf", "cv.pdf", nil) {
		t.Fatal("pdf should be supported for upload")
	}
	if Supported("text/plain", "cv.txt", nil) {
		t.Fatal("plain text uploads are not accepted")
	}
	if Supported("image/png", "photo.png", nil) {
		t.Fatal("png must be rejected")
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>John Doe</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p></w:body></w:document>`
	got := stripDocxXML(raw)
	want := "John Doe\nEngineer"
	if got != want {
		t.Fatalf("stripDocxXML = %q, want %q", got, want)
	}
}
