package rijndael

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Known-answer files use the NIST CAVP response format (.rsp):
//
//	# comment
//	[ENCRYPT]
//
//	COUNT = 0
//	KEY = 00000000000000000000000000000000
//	PLAINTEXT = f34481ec3cc627bacd5dc3fb08f273e6
//	CIPHERTEXT = 0336763e966d92595a567cc9ce537f5e
//
// Records are separated by blank lines or a new COUNT. Only [ENCRYPT]
// records are returned; records before any section header are treated as
// encryption records. Records carrying an IV belong to a chaining mode
// (CBC, CFB, OFB) and are skipped.

// Vector is a single known-answer test
type Vector struct {
	Name       string
	Key        []byte
	Plaintext  []byte
	Ciphertext []byte
}

// vectorRecord accumulates the fields of one record while parsing
type vectorRecord struct {
	line       int
	count      string
	key        []byte
	plaintext  []byte
	ciphertext []byte
	chained    bool // an IV was seen
}

func (r *vectorRecord) empty() bool {
	return r.count == "" && r.key == nil && r.plaintext == nil && r.ciphertext == nil && !r.chained
}

// ParseVectors reads known-answer records from r. name identifies the source
// in vector names and error messages.
func ParseVectors(r io.Reader, name string) ([]Vector, error) {
	vectors, _, err := parseVectors(r, name)
	return vectors, err
}

// parseVectors is ParseVectors that also reports how many records were
// skipped because they carry an IV.
func parseVectors(r io.Reader, name string) ([]Vector, int, error) {
	var (
		vectors []Vector
		rec     vectorRecord
		encrypt = true
		skipped int
		lineNo  int
	)

	flush := func() error {
		if rec.empty() {
			return nil
		}
		defer func() { rec = vectorRecord{} }()
		if !encrypt {
			return nil
		}
		if rec.chained {
			skipped++
			return nil
		}
		if rec.key == nil || rec.plaintext == nil || rec.ciphertext == nil {
			return &VectorError{Path: name, Line: rec.line, Message: "incomplete record: need KEY, PLAINTEXT and CIPHERTEXT"}
		}
		if len(rec.plaintext) != len(rec.ciphertext) {
			return &VectorError{
				Path:    name,
				Line:    rec.line,
				Message: fmt.Sprintf("plaintext is %d bytes but ciphertext is %d", len(rec.plaintext), len(rec.ciphertext)),
			}
		}
		vname := fmt.Sprintf("%s#%d", name, len(vectors))
		if rec.count != "" {
			vname = fmt.Sprintf("%s/COUNT=%s", name, rec.count)
		}
		vectors = append(vectors, Vector{
			Name:       vname,
			Key:        rec.key,
			Plaintext:  rec.plaintext,
			Ciphertext: rec.ciphertext,
		})
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, 0, err
			}
			continue
		case strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "["):
			if err := flush(); err != nil {
				return nil, 0, err
			}
			switch strings.ToUpper(strings.Trim(line, "[]")) {
			case "ENCRYPT":
				encrypt = true
			case "DECRYPT":
				encrypt = false
			}
			continue
		}

		field, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, 0, &VectorError{Path: name, Line: lineNo, Message: fmt.Sprintf("expected FIELD = value, got %q", line)}
		}
		field = strings.ToUpper(strings.TrimSpace(field))
		value = strings.TrimSpace(value)

		if field == "COUNT" && !rec.empty() {
			if err := flush(); err != nil {
				return nil, 0, err
			}
		}
		if rec.empty() {
			rec.line = lineNo
		}

		switch field {
		case "COUNT":
			rec.count = value
		case "KEY", "PLAINTEXT", "CIPHERTEXT":
			b, err := hex.DecodeString(value)
			if err != nil {
				return nil, 0, &VectorError{Path: name, Line: lineNo, Message: fmt.Sprintf("bad hex in %s", field), Err: err}
			}
			switch field {
			case "KEY":
				rec.key = b
			case "PLAINTEXT":
				rec.plaintext = b
			default:
				rec.ciphertext = b
			}
		case "IV":
			rec.chained = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, &VectorError{Path: name, Message: "read failed", Err: err}
	}
	if err := flush(); err != nil {
		return nil, 0, err
	}

	return vectors, skipped, nil
}
