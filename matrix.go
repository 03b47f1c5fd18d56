package rijndael

import (
	"bytes"
	"encoding/hex"
	"math"
)

// Matrix is a rows x cols byte matrix stored row-major. It carries no field
// semantics: arithmetic that needs them takes the scalar operations as
// arguments.
type Matrix struct {
	rows int
	cols int
	data []byte
}

// NewMatrix returns a zero-filled rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]byte, rows*cols),
	}
}

// MatrixFromRows builds a matrix from nested rows. Every row must have the
// length of the first one; otherwise the *LengthError holds the total byte
// count, the requested len(rows) x len(rows[0]) shape and the first ragged
// row.
func MatrixFromRows(rows [][]byte) (*Matrix, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	for i, row := range rows {
		if len(row) != cols {
			total := 0
			for _, r := range rows {
				total += len(r)
			}
			return nil, &LengthError{Len: total, Rows: len(rows), Cols: cols, Row: i}
		}
	}

	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		copy(m.Row(i), row)
	}
	return m, nil
}

// MatrixFromBytes fills a rows x cols matrix row by row from b. The length of
// b must equal rows*cols exactly.
func MatrixFromBytes(rows, cols int, b []byte) (*Matrix, error) {
	if rows < 0 || cols < 0 || (cols != 0 && rows > math.MaxInt/cols) || len(b) != rows*cols {
		return nil, &LengthError{Len: len(b), Rows: rows, Cols: cols}
	}
	m := NewMatrix(rows, cols)
	copy(m.data, b)
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) byte {
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v byte) {
	m.data[i*m.cols+j] = v
}

// Row returns row i as a slice aliasing the matrix storage, so in-place
// edits such as rotations are visible in m.
func (m *Matrix) Row(i int) []byte {
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// Bytes returns a copy of the elements in row-major order.
func (m *Matrix) Bytes() []byte {
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out
}

// Transpose returns the cols x rows matrix with rows and columns swapped.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.data[j*t.cols+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

// Xor returns the elementwise XOR of m and other.
func (m *Matrix) Xor(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, &ShapeError{Op: "xor", Rows: m.rows, Cols: m.cols, OtherRows: other.rows, OtherCols: other.cols}
	}
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] ^ other.data[i]
	}
	return out, nil
}

// Mul multiplies m by other. Each result element is the fold, starting from
// zero, of add over mul(row element, column element).
func (m *Matrix) Mul(other *Matrix, mul, add func(a, b byte) byte) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, &ShapeError{Op: "mul", Rows: m.rows, Cols: m.cols, OtherRows: other.rows, OtherCols: other.cols}
	}
	out := NewMatrix(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var acc byte
			for k := 0; k < m.cols; k++ {
				acc = add(acc, mul(m.At(i, k), other.At(k, j)))
			}
			out.data[i*out.cols+j] = acc
		}
	}
	return out, nil
}

// Map returns a matrix with f applied to every element.
func (m *Matrix) Map(f func(byte) byte) *Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.rows == other.rows && m.cols == other.cols && bytes.Equal(m.data, other.data)
}

// String renders the flattened elements as lowercase hex.
func (m *Matrix) String() string {
	return hex.EncodeToString(m.data)
}
