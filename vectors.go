package rijndael

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/absfs/absfs"
	"github.com/google/uuid"
)

// vectorExt is the file extension VerifyVectorDir looks for
const vectorExt = ".rsp"

// monteCarloTag marks AESVS Monte Carlo files (ECBMCT128.rsp, ...), whose
// ciphertexts come from chained iterations rather than a single encryption.
const monteCarloTag = "MCT"

// StandardVectors returns the example vectors of FIPS-197 Appendix B and C.
func StandardVectors() []Vector {
	return []Vector{
		{
			Name:       "FIPS-197/B",
			Key:        mustHex("2b7e151628aed2a6abf7158809cf4f3c"),
			Plaintext:  mustHex("3243f6a8885a308d313198a2e0370734"),
			Ciphertext: mustHex("3925841d02dc09fbdc118597196a0b32"),
		},
		{
			Name:       "FIPS-197/C.1",
			Key:        mustHex("000102030405060708090a0b0c0d0e0f"),
			Plaintext:  mustHex("00112233445566778899aabbccddeeff"),
			Ciphertext: mustHex("69c4e0d86a7b0430d8cdb78070b4c55a"),
		},
		{
			Name:       "FIPS-197/C.2",
			Key:        mustHex("000102030405060708090a0b0c0d0e0f1011121314151617"),
			Plaintext:  mustHex("00112233445566778899aabbccddeeff"),
			Ciphertext: mustHex("dda97ca4864cdfe06eaf70a0ec0d7191"),
		},
		{
			Name:       "FIPS-197/C.3",
			Key:        mustHex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"),
			Plaintext:  mustHex("00112233445566778899aabbccddeeff"),
			Ciphertext: mustHex("8ea2b7ca516745bfeafc49904b496089"),
		},
	}
}

// SelfTest runs StandardVectors and returns an error if any of them fails.
func SelfTest() error {
	return VerifyVectors(StandardVectors(), nil).Err()
}

// VectorFailure records one vector that did not reproduce
type VectorFailure struct {
	Vector Vector
	Got    []byte // ciphertext produced, nil if encryption failed
	Err    error
}

// Report summarises a known-answer run
type Report struct {
	// ID identifies the run in log output
	ID       uuid.UUID
	Passed   int
	Failures []VectorFailure

	// SkippedFiles lists vector files that hold no independent-block
	// encryption records: Monte Carlo files and chaining-mode (IV) files.
	SkippedFiles []string
}

// Total returns the number of vectors checked
func (r *Report) Total() int {
	return r.Passed + len(r.Failures)
}

// Err returns nil when every vector passed
func (r *Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	first := r.Failures[0]
	return fmt.Errorf("%d of %d vectors failed, first %s: %w", len(r.Failures), r.Total(), first.Vector.Name, first.Err)
}

func (r *Report) merge(other *Report) {
	r.Passed += other.Passed
	r.Failures = append(r.Failures, other.Failures...)
	r.SkippedFiles = append(r.SkippedFiles, other.SkippedFiles...)
}

func newReport() *Report {
	return &Report{ID: uuid.New()}
}

// VerifyVectors encrypts every vector with a Cipher built from config and
// compares the result with the expected ciphertext. A nil config selects
// DefaultConfig().
func VerifyVectors(vectors []Vector, config *Config) *Report {
	report := verifyVectors(vectors, config, uuid.New())
	logSummary(config, report)
	return report
}

func verifyVectors(vectors []Vector, config *Config, id uuid.UUID) *Report {
	report := &Report{ID: id}
	log := config.logger()

	for _, v := range vectors {
		got, err := encryptVector(v, config)
		if err != nil {
			log.Warn("known-answer vector failed", "run", id.String(), "vector", v.Name, "error", err)
			report.Failures = append(report.Failures, VectorFailure{Vector: v, Got: got, Err: err})
			continue
		}
		report.Passed++
	}
	return report
}

func encryptVector(v Vector, config *Config) ([]byte, error) {
	c, err := NewCipher(v.Key, config)
	if err != nil {
		return nil, err
	}
	got, err := c.Encrypt(v.Plaintext)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(got, v.Ciphertext) {
		return got, fmt.Errorf("%w: got %x, want %x", ErrVectorMismatch, got, v.Ciphertext)
	}
	return got, nil
}

// LoadVectors reads a known-answer file from fs. Records carrying an IV are
// skipped.
func LoadVectors(fs absfs.FileSystem, name string) ([]Vector, error) {
	vectors, _, err := loadVectors(fs, name)
	return vectors, err
}

func loadVectors(fs absfs.FileSystem, name string) ([]Vector, int, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, 0, &VectorError{Path: name, Message: "open failed", Err: err}
	}
	defer f.Close()

	return parseVectors(f, name)
}

// VerifyVectorDir loads and verifies every .rsp file under root. Monte Carlo
// files and records of chaining modes are skipped and listed in
// Report.SkippedFiles. Parse and I/O errors abort the walk; vector mismatches
// are collected in the report.
func VerifyVectorDir(fs absfs.FileSystem, root string, config *Config) (*Report, error) {
	report := newReport()
	log := config.logger()

	err := walkVectorFiles(fs, root, func(name string) error {
		if isMonteCarlo(name) {
			log.Debug("skipping vector file", "run", report.ID.String(), "file", name, "reason", "monte carlo")
			report.SkippedFiles = append(report.SkippedFiles, name)
			return nil
		}

		vectors, skipped, err := loadVectors(fs, name)
		if err != nil {
			return err
		}
		if skipped > 0 {
			log.Debug("skipped chaining-mode records", "run", report.ID.String(), "file", name, "records", skipped)
		}
		if len(vectors) == 0 {
			if skipped > 0 {
				report.SkippedFiles = append(report.SkippedFiles, name)
			}
			return nil
		}

		log.Debug("verifying vector file", "run", report.ID.String(), "file", name, "vectors", len(vectors))
		report.merge(verifyVectors(vectors, config, report.ID))
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("vector walk failed: %w", err)
	}

	logSummary(config, report)
	return report, nil
}

// walkVectorFiles calls fn for every .rsp file below root in lexical order
func walkVectorFiles(fs absfs.FileSystem, root string, fn func(name string) error) error {
	info, err := fs.Stat(root)
	if err != nil {
		return &VectorError{Path: root, Message: "stat failed", Err: err}
	}
	if !info.IsDir() {
		if strings.EqualFold(path.Ext(root), vectorExt) {
			return fn(root)
		}
		return nil
	}

	entries, err := readDir(fs, root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Name() == "." || entry.Name() == ".." {
			continue
		}
		if err := walkVectorFiles(fs, path.Join(root, entry.Name()), fn); err != nil {
			return err
		}
	}
	return nil
}

func isMonteCarlo(name string) bool {
	return strings.Contains(strings.ToUpper(path.Base(name)), monteCarloTag)
}

func readDir(fs absfs.FileSystem, dir string) ([]os.FileInfo, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, &VectorError{Path: dir, Message: "open failed", Err: err}
	}
	defer f.Close()

	entries, err := f.Readdir(-1)
	if err != nil {
		return nil, &VectorError{Path: dir, Message: "readdir failed", Err: err}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func logSummary(config *Config, report *Report) {
	config.logger().Info("known-answer run complete",
		"run", report.ID.String(),
		"passed", report.Passed,
		"failed", len(report.Failures),
		"skipped_files", len(report.SkippedFiles))
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
