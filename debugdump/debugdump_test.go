package debugdump

import (
	"path/filepath"
	"testing"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteReadRoundtrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "snapshot.json")

	in := sample{Name: "depot", Count: 3}
	if err := WriteJSON(in, file); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	out, err := ReadJSON[sample](file)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if out != in {
		t.Errorf("ReadJSON = %+v, want %+v", out, in)
	}
}

func TestReadJSONMissingFile(t *testing.T) {
	_, err := ReadJSON[sample](filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("ReadJSON: want error for missing file")
	}
}
