package document

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const testTemplate = `Status Pasien
== Identitas
Nama: <<NAMA>>
Suhu: <<SUHU>>
`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRender(t *testing.T) {
	r := NewPDFRenderer(writeTemplate(t, testTemplate))

	out, err := r.Render(map[string]string{
		"<<NAMA>>": "Aisyah",
		"<<SUHU>>": "36.8 °C",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with PDF magic, got %q", out[:min(8, len(out))])
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	r := NewPDFRenderer(filepath.Join(t.TempDir(), "nope.txt"))
	if _, err := r.Render(nil); err == nil {
		t.Fatal("Render() expected error for missing template")
	}
}
