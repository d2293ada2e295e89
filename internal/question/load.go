package question

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source formats understood by LoadFile and Encode.
const (
	FormatText = "txt"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// LoadFile reads and parses a bank. The format is chosen from the file
// extension: .yml, .yaml and .json are structured, anything else is the
// line-oriented text format.
func LoadFile(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, &NotFoundError{Path: path, Err: err}
	}
	switch FormatForPath(path) {
	case FormatYAML, FormatJSON:
		return LoadStructured(data, path)
	default:
		return ParseReader(bytes.NewReader(data))
	}
}

// FormatForPath maps a file extension to a bank format.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// LoadStructured parses a YAML or JSON bank document and validates it.
// Decoder failures are *FormatError and validation failures *ValidationError;
// both match ErrFormat.
func LoadStructured(data []byte, path string) (Bank, error) {
	raw, err := parseDocument(data, path)
	if err != nil {
		return Bank{}, err
	}
	doc := raw.document()
	collector := &issueCollector{}
	validateVersion(collector, doc.Version)
	validateQuestions(collector, doc.Questions, raw.hasCorrect())
	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return Bank{Questions: normalizeQuestions(doc.Questions)}, nil
}

// documentRecord mirrors Document but keeps track of absent correct keys.
type documentRecord struct {
	Version   int              `json:"version" yaml:"version"`
	Questions []questionRecord `json:"questions" yaml:"questions"`
}

type questionRecord struct {
	Prompt  string   `json:"question" yaml:"question"`
	Answers []string `json:"answers" yaml:"answers"`
	Correct *int     `json:"correct" yaml:"correct"`
}

func (r documentRecord) document() Document {
	questions := make([]Question, 0, len(r.Questions))
	for _, q := range r.Questions {
		index := 0
		if q.Correct != nil {
			index = *q.Correct
		}
		questions = append(questions, Question{Prompt: q.Prompt, Answers: q.Answers, CorrectIndex: index})
	}
	return Document{Version: r.Version, Questions: questions}
}

func (r documentRecord) hasCorrect() []bool {
	present := make([]bool, len(r.Questions))
	for i, q := range r.Questions {
		present[i] = q.Correct != nil
	}
	return present
}

func parseDocument(data []byte, path string) (documentRecord, error) {
	if FormatForPath(path) == FormatJSON {
		return parseJSONDocument(data)
	}
	return parseYAMLDocument(data)
}

func parseJSONDocument(data []byte) (documentRecord, error) {
	var doc documentRecord
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return documentRecord{}, &FormatError{Reason: "invalid json document", Err: err}
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return documentRecord{}, &FormatError{Reason: "multiple json documents are not supported"}
		}
		return documentRecord{}, &FormatError{Reason: "invalid json document", Err: err}
	}
	return doc, nil
}

func parseYAMLDocument(data []byte) (documentRecord, error) {
	var doc documentRecord
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return documentRecord{}, &FormatError{Reason: "invalid yaml document", Err: err}
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return documentRecord{}, &FormatError{Reason: "multiple yaml documents are not supported"}
		}
		return documentRecord{}, &FormatError{Reason: "invalid yaml document", Err: err}
	}
	return doc, nil
}
