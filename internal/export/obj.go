package export

import (
	"bufio"
	"fmt"
	"io"

	"voxmesh/internal/mesh"
)

// WriteOBJ writes the three streams as Wavefront OBJ, one group per stream
// with a matching material name so a downstream viewer can bind distinct
// materials to top, side and bottom surfaces.
func WriteOBJ(w io.Writer, b *mesh.Buffers) error {
	bw := bufio.NewWriter(w)

	next := 1 // OBJ indices are 1-based and global across groups
	for _, g := range []struct {
		name   string
		stream mesh.Stream
	}{
		{"top", b.Top},
		{"side", b.Side},
		{"bottom", b.Bottom},
	} {
		if len(g.stream) == 0 {
			continue
		}
		fmt.Fprintf(bw, "g %s\n", g.name)
		fmt.Fprintf(bw, "usemtl %s\n", g.name)
		for _, v := range g.stream {
			fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X(), v.Position.Y(), v.Position.Z())
		}
		for _, v := range g.stream {
			fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal.X(), v.Normal.Y(), v.Normal.Z())
		}
		for _, v := range g.stream {
			fmt.Fprintf(bw, "vt %g %g\n", v.UV.X(), v.UV.Y())
		}
		for i := 0; i+2 < len(g.stream); i += 3 {
			a, b, c := next+i, next+i+1, next+i+2
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		next += len(g.stream)
	}

	return bw.Flush()
}
