package math

const (
	// Below this absolute determinant a matrix is reported as singular.
	SingularEpsilon float32 = 1e-6
	// Tolerance used when checking the bottom row and basis orthogonality.
	DiagnosticTolerance float32 = 1e-4
)

// MatrixReport describes how faithfully a matrix survives decomposition.
type MatrixReport struct {
	Determinant float32
	// Affine is true when the bottom row is (0, 0, 0, 1).
	Affine bool
	// Singular is true when at least one basis axis collapsed.
	Singular bool
	// Mirrored is true for a negative determinant. The sign is lost on decomposition.
	Mirrored bool
	// Skewed is true when the basis axes are not mutually orthogonal.
	Skewed bool
}

// Lossless reports whether decomposing and recomposing the matrix gives it back.
func (r MatrixReport) Lossless() bool {
	return r.Affine && !r.Singular && !r.Mirrored && !r.Skewed
}

// Issues lists the conditions that make decomposition lossy.
func (r MatrixReport) Issues() []string {
	var issues []string
	if !r.Affine {
		issues = append(issues, "bottom row is not (0, 0, 0, 1) and will be ignored")
	}
	if r.Singular {
		issues = append(issues, "singular, a basis axis has collapsed")
	}
	if r.Mirrored {
		issues = append(issues, "mirrored, negative scale will be dropped")
	}
	if r.Skewed {
		issues = append(issues, "skewed, shear will be dropped")
	}
	return issues
}

func det2(a, b, c, d float32) float32 {
	return a*d - b*c
}

// det3 expands the 3x3 matrix
//
//	| a b c |
//	| d e f |
//	| g h i |
//
// along its first row.
func det3(a, b, c, d, e, f, g, h, i float32) float32 {
	return a*det2(e, f, h, i) - b*det2(d, f, g, i) + c*det2(d, e, g, h)
}

// minor returns the determinant of the 3x3 matrix left after crossing out
// row 0 and the given column.
func (mt Mat4) minor(col int) float32 {
	var cols [3]int
	n := 0
	for c := 0; c < 4; c++ {
		if c != col {
			cols[n] = c
			n++
		}
	}
	return det3(
		mt.At(1, cols[0]), mt.At(1, cols[1]), mt.At(1, cols[2]),
		mt.At(2, cols[0]), mt.At(2, cols[1]), mt.At(2, cols[2]),
		mt.At(3, cols[0]), mt.At(3, cols[1]), mt.At(3, cols[2]),
	)
}

// Determinant computes the determinant by cofactor expansion along the first
// row, alternating signs, down to 2x2 determinants.
func Determinant(mt Mat4) float32 {
	var det float32
	sign := float32(1)
	for col := 0; col < 4; col++ {
		det += sign * mt.At(0, col) * mt.minor(col)
		sign = -sign
	}
	return det
}

// Determinant is a method form of Determinant.
func (mt Mat4) Determinant() float32 {
	return Determinant(mt)
}

// Inspect checks the matrix for the conditions under which decomposition is
// only approximate. It never rejects a matrix.
func Inspect(mt Mat4) MatrixReport {
	det := Determinant(mt)
	report := MatrixReport{
		Determinant: det,
		Affine:      mt.Row(3).Compare(NewVec4(0, 0, 0, 1), DiagnosticTolerance),
		Singular:    kabs(det) < SingularEpsilon,
		Mirrored:    det < -SingularEpsilon,
	}

	x, y, z := mt.Column(0), mt.Column(1), mt.Column(2)
	lx, ly, lz := x.Length(), y.Length(), z.Length()
	if lx > 0 && ly > 0 && lz > 0 {
		xy := kabs(x.Dot(y)) / (lx * ly)
		yz := kabs(y.Dot(z)) / (ly * lz)
		zx := kabs(z.Dot(x)) / (lz * lx)
		report.Skewed = xy > DiagnosticTolerance || yz > DiagnosticTolerance || zx > DiagnosticTolerance
	}
	return report
}
