// Package source reads the documents the CLI and server analyse: plain
// text, HTML pages and JSONL corpora.
package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Document is one text to analyse.
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Item is one JSONL record.
type Item struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
	Body  string `json:"text"`
}

// Open reads path, or stdin when path is "" or "-".
func Open(path string) ([]Document, error) {
	if path == "" || path == "-" {
		return Read(os.Stdin, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read decodes r according to the extension of name: ".html"/".htm" is
// stripped to text, ".jsonl" yields one document per record, anything
// else is plain text.
func Read(r io.Reader, name string) ([]Document, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jsonl":
		return ReadJSONL(r, name)
	case ".html", ".htm":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return []Document{{Name: name, Text: StripHTML(string(data))}}, nil
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return []Document{{Name: name, Text: string(data)}}, nil
	}
}

// ReadJSONL loads one document per line. Malformed lines are skipped with
// a warning; a stream without any valid record is an error.
func ReadJSONL(r io.Reader, name string) ([]Document, error) {
	var docs []Document

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var item Item
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			slog.Warn("skipping malformed JSON", "line", line, "file", name, "error", err)
			continue
		}
		docs = append(docs, Document{Name: item.name(name, line), Text: item.Body})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid items found in %s", name)
	}
	return docs, nil
}

func (it Item) name(file string, line int) string {
	switch {
	case it.ID != "":
		return it.ID
	case it.URL != "":
		return it.URL
	case it.Title != "":
		return it.Title
	default:
		return fmt.Sprintf("%s:%d", file, line)
	}
}

// Texts returns the text of each document. Documents are kept apart so
// that sentences and windows never run from one document into the next.
func Texts(docs []Document) []string {
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	return texts
}
