// Package matrix provides the small dense-matrix layer used by metroplan:
// the symmetric weight relation of a station graph and the pairwise
// stop-distance tables of the trip optimizer.
//
// Values are int64 because every weight and distance in a transit network is
// a whole number of hops or kilometres. Absence of an edge is 0 in adjacency
// matrices; absence of a path is tracked by the caller and never encoded as
// a magic "infinite" number.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time.
//	Clone() performs a deep copy in O(rows*cols) time.
package matrix

// Matrix represents a two-dimensional mutable array of int64 values.
// Each method enforces bounds checking and returns ErrOutOfRange on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	At(i, j int) (int64, error)

	// Set assigns the value v at position (i, j).
	Set(i, j int, v int64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// ValidateSquare returns nil when m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateSymmetric returns nil when m is square and m[i,j] == m[j,i] for all i, j.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	var (
		i, j   int
		ij, ji int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			ij, _ = m.At(i, j) // safe after shape validation
			ji, _ = m.At(j, i)
			if ij != ji {
				return ErrAsymmetry
			}
		}
	}

	return nil
}
