package mesh

import "github.com/go-gl/mathgl/mgl32"

// Finalize computes winding normals and UV-gradient tangents for every
// stream. Extractors that assign normals directly (axis-aligned faces)
// should call ComputeTangents instead.
func (b *Buffers) Finalize() {
	b.ComputeNormals()
	b.ComputeTangents()
}

// ComputeNormals derives one normal per triangle from its winding and
// assigns it to all three vertices.
func (b *Buffers) ComputeNormals() {
	for _, s := range []Stream{b.Top, b.Side, b.Bottom} {
		computeNormals(s)
	}
}

// ComputeTangents derives one tangent per triangle from its UV gradient and
// assigns it to all three vertices.
func (b *Buffers) ComputeTangents() {
	for _, s := range []Stream{b.Top, b.Side, b.Bottom} {
		computeTangents(s)
	}
}

func computeNormals(s Stream) {
	for i := 0; i+2 < len(s); i += 3 {
		e1 := s[i+1].Position.Sub(s[i].Position)
		e2 := s[i+2].Position.Sub(s[i].Position)
		n := e1.Cross(e2)
		if n.Len() == 0 {
			continue
		}
		n = n.Normalize()
		s[i].Normal = n
		s[i+1].Normal = n
		s[i+2].Normal = n
	}
}

func computeTangents(s Stream) {
	for i := 0; i+2 < len(s); i += 3 {
		e1 := s[i+1].Position.Sub(s[i].Position)
		e2 := s[i+2].Position.Sub(s[i].Position)
		duv1 := s[i+1].UV.Sub(s[i].UV)
		duv2 := s[i+2].UV.Sub(s[i].UV)

		det := duv1.X()*duv2.Y() - duv2.X()*duv1.Y()
		var t mgl32.Vec3
		if det != 0 {
			r := 1.0 / det
			t = e1.Mul(duv2.Y()).Sub(e2.Mul(duv1.Y())).Mul(r)
		}
		if t.Len() == 0 {
			t = perpendicular(s[i].Normal)
		} else {
			t = t.Normalize()
		}
		s[i].Tangent = t
		s[i+1].Tangent = t
		s[i+2].Tangent = t
	}
}

// perpendicular picks a unit vector orthogonal to n, used when the UV
// gradient is degenerate.
func perpendicular(n mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{1, 0, 0}
	if n.Y() == 0 && n.Z() == 0 {
		axis = mgl32.Vec3{0, 0, 1}
	}
	p := n.Cross(axis)
	if p.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return p.Normalize()
}
