package marching

// CornerMask computes the 8-bit activation mask for one cube. Bit i is set
// iff corner i is strictly above the surface level; a sample exactly equal
// to the level counts as outside. The corner order is the table convention
// documented in table.go.
func CornerMask(corners [8]float64, surfaceLevel float64) uint8 {
	var mask uint8
	for i, v := range corners {
		if v > surfaceLevel {
			mask |= 1 << uint(i)
		}
	}
	return mask
}
