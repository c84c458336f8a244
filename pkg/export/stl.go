package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel"
)

// WriteSTL writes the mesh in binary STL form. The writer works on the
// kernel-agnostic mesh rather than any backend's internal triangle type,
// so it stays usable with every kernel implementation.
func WriteSTL(w io.Writer, m *kernel.Mesh, name string) error {
	if m == nil || m.IsEmpty() {
		return ErrEmptyMesh
	}

	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], "mcfe-galaxy: "+name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("export: stl header: %w", err)
	}

	triCount := uint32(m.TriangleCount())
	if err := binary.Write(bw, binary.LittleEndian, triCount); err != nil {
		return fmt.Errorf("export: stl count: %w", err)
	}

	record := make([]float32, 12) // normal + 3 vertices
	for i := 0; i < m.TriangleCount(); i++ {
		ni := int(m.Indices[i*3]) * 3
		record[0] = m.Normals[ni]
		record[1] = m.Normals[ni+1]
		record[2] = m.Normals[ni+2]
		for j := 0; j < 3; j++ {
			vi := int(m.Indices[i*3+j]) * 3
			record[3+j*3] = m.Vertices[vi]
			record[3+j*3+1] = m.Vertices[vi+1]
			record[3+j*3+2] = m.Vertices[vi+2]
		}
		if err := binary.Write(bw, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("export: stl triangle %d: %w", i, err)
		}
		// Attribute byte count, always zero.
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("export: stl triangle %d: %w", i, err)
		}
	}

	return bw.Flush()
}
