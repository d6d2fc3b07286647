package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/lexis/pkg/lexis/freq"
	"github.com/cognicore/lexis/pkg/lexis/internalerr"
	"github.com/cognicore/lexis/pkg/lexis/store"
)

// execute runs the CLI with args and returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestConcordanceCommand(t *testing.T) {
	out, err := execute(t, "", "--json", "concordance", "fox",
		"--text", "the quick brown fox jumps over the lazy dog", "--width", "2")
	if err != nil {
		t.Fatalf("concordance: %v", err)
	}

	var windows []string
	if err := json.Unmarshal([]byte(out), &windows); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !reflect.DeepEqual(windows, []string{"brown fox jumps "}) {
		t.Errorf("windows = %q", windows)
	}
}

func TestConcordanceReadsStdin(t *testing.T) {
	out, err := execute(t, "A fox. Another fox!", "--json", "concordance", "fox", "-w", "0")
	if err != nil {
		t.Fatalf("concordance: %v", err)
	}

	var windows []string
	if err := json.Unmarshal([]byte(out), &windows); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !reflect.DeepEqual(windows, []string{"fox ", "fox "}) {
		t.Errorf("windows = %q", windows)
	}
}

func TestConcordanceReadsHTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	html := "<html><body><p>The red fox sleeps.</p><script>var fox = 1;</script></body></html>"
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := execute(t, "", "--json", "concordance", "fox", "--input", path, "--width", "2")
	if err != nil {
		t.Fatalf("concordance: %v", err)
	}

	var windows []string
	if err := json.Unmarshal([]byte(out), &windows); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !reflect.DeepEqual(windows, []string{"red fox sleeps "}) {
		t.Errorf("windows = %q", windows)
	}
}

func TestInvalidPatternFails(t *testing.T) {
	_, err := execute(t, "", "--json", "concordance", "(", "--text", "anything")
	if !errors.Is(err, internalerr.ErrInvalidPattern) {
		t.Fatalf("err = %v, want ErrInvalidPattern", err)
	}
}

func TestNegativeWidthFails(t *testing.T) {
	_, err := execute(t, "", "--json", "collocation", "cat", "--text", "cat", "--width", "-1")
	if !errors.Is(err, internalerr.ErrInvalidWidth) {
		t.Fatalf("err = %v, want ErrInvalidWidth", err)
	}
}

func TestCooccurrenceCommand(t *testing.T) {
	out, err := execute(t, "", "--json", "cooccurrence", "cat", "dog",
		"--text", "The cat sat near the dog. The fish swam away.")
	if err != nil {
		t.Fatalf("cooccurrence: %v", err)
	}

	var sentences []string
	if err := json.Unmarshal([]byte(out), &sentences); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !reflect.DeepEqual(sentences, []string{"The cat sat near the dog."}) {
		t.Errorf("sentences = %q", sentences)
	}
}

func TestJSONLRecordsAnalysedSeparately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.jsonl")
	feed := `{"id":"1","text":"The cat sat by the"}
{"id":"2","text":"dog ran home."}
`
	if err := os.WriteFile(path, []byte(feed), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := execute(t, "", "--json", "cooccurrence", "cat", "dog", "--input", path)
	if err != nil {
		t.Fatalf("cooccurrence: %v", err)
	}
	var sentences []string
	if err := json.Unmarshal([]byte(out), &sentences); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(sentences) != 0 {
		t.Errorf("sentences should not span records, got %q", sentences)
	}

	out, err = execute(t, "", "--json", "collocation", "cat", "--input", path, "--width", "10")
	if err != nil {
		t.Fatalf("collocation: %v", err)
	}
	var run store.Run
	if err := json.Unmarshal([]byte(out), &run); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := []freq.Pair{{Key: "sat", Value: 1}}
	if !reflect.DeepEqual(run.Counts, want) {
		t.Errorf("counts = %+v, want %+v", run.Counts, want)
	}
}

func TestRunsDeleteUnknownID(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	_, err := execute(t, "", "--store", db, "runs", "delete", "no-such-run")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCollocationSaveAndRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	text := "The cat sat. The cat ran."

	out, err := execute(t, "", "--json", "--store", db, "collocation", "cat",
		"--text", text, "--width", "4", "--save")
	if err != nil {
		t.Fatalf("collocation: %v", err)
	}
	var run store.Run
	if err := json.Unmarshal([]byte(out), &run); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := []freq.Pair{{Key: "ran", Value: 1}, {Key: "sat", Value: 1}}
	if !reflect.DeepEqual(run.Counts, want) {
		t.Errorf("counts = %+v, want %+v", run.Counts, want)
	}
	if run.ID == "" {
		t.Fatal("run has no id")
	}

	out, err = execute(t, "", "--json", "--store", db, "runs", "list")
	if err != nil {
		t.Fatalf("runs list: %v", err)
	}
	var runs []store.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID || runs[0].Pattern != "cat" {
		t.Fatalf("runs = %+v", runs)
	}

	out, err = execute(t, "", "--json", "--store", db, "runs", "show", run.ID)
	if err != nil {
		t.Fatalf("runs show: %v", err)
	}
	var shown store.Run
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if shown.Total() != 2 {
		t.Errorf("total = %d, want 2", shown.Total())
	}

	out, err = execute(t, "", "--json", "--store", db, "runs", "top", "cat", "-n", "1")
	if err != nil {
		t.Fatalf("runs top: %v", err)
	}
	var top []freq.Pair
	if err := json.Unmarshal([]byte(out), &top); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(top) != 1 || top[0].Value != 1 {
		t.Errorf("top = %+v", top)
	}

	if _, err := execute(t, "", "--store", db, "runs", "delete", run.ID); err != nil {
		t.Fatalf("runs delete: %v", err)
	}
	_, err = execute(t, "", "--json", "--store", db, "runs", "show", run.ID)
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("show after delete: err = %v, want ErrNotFound", err)
	}
}

func TestCollocationAscending(t *testing.T) {
	out, err := execute(t, "", "--json", "collocation", "cat",
		"--text", "cat dog dog bird", "--width", "8", "--ascending")
	if err != nil {
		t.Fatalf("collocation: %v", err)
	}
	var run store.Run
	if err := json.Unmarshal([]byte(out), &run); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := []freq.Pair{{Key: "bird", Value: 1}, {Key: "dog", Value: 2}}
	if !reflect.DeepEqual(run.Counts, want) {
		t.Errorf("counts = %+v, want %+v", run.Counts, want)
	}
}

func TestSaveWithoutStoreFails(t *testing.T) {
	_, err := execute(t, "", "--json", "collocation", "cat", "--text", "cat dog", "--save")
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestPOSCommand(t *testing.T) {
	out, err := execute(t, "", "--json", "pos", "VBZ", "XYZ")
	if err != nil {
		t.Fatalf("pos: %v", err)
	}
	var rows []tagRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Category != "verb" || rows[0].WordNet != "v" || rows[0].Description == "" {
		t.Errorf("VBZ = %+v", rows[0])
	}
	if rows[1].Category != "unknown" || rows[1].WordNet != "" {
		t.Errorf("XYZ = %+v", rows[1])
	}
}

func TestConfigFileWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexis.yaml")
	if err := os.WriteFile(path, []byte("width: 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := execute(t, "", "--json", "--config", path, "concordance", "fox",
		"--text", "the quick brown fox jumps over the lazy dog")
	if err != nil {
		t.Fatalf("concordance: %v", err)
	}
	var windows []string
	if err := json.Unmarshal([]byte(out), &windows); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !reflect.DeepEqual(windows, []string{"brown fox jumps "}) {
		t.Errorf("windows = %q", windows)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Word", "Count"}, [][]string{{"cat", "2"}, {"dog"}},
		[]columnAlignment{alignLeft, alignRight})
	for _, want := range []string{"Word", "Count", "cat", "dog"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
