package mathutil

// Mat4 is a 4×4 matrix of 16 values in file order. AWD writers emit the
// transform row by row; the decoder does not reinterpret the layout.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Row returns the four values of row r.
func (m Mat4) Row(r int) [4]float64 {
	return [4]float64{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}
