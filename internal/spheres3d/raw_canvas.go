package spheres3d

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB64 dumps the unclamped colours: int32 W, H (little-endian)
// followed by W*H*3 float64 values, top row first.
func (c *Canvas) SaveRawRGB64(path string) error {
	// Sanity checks
	exp64 := int64(c.W) * int64(c.H) * 3
	if int64(len(c.Buf)) != exp64 {
		return fmt.Errorf("Buf length mismatch: got %d, expected %d (W*H*3)", len(c.Buf), exp64)
	}

	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	// Header: W, H as int32 (little-endian)
	if err := binary.Write(w, binary.LittleEndian, int32(c.W)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(c.H)); err != nil {
		return err
	}

	// Body: write the full buffer in one shot as float64
	if err := binary.Write(w, binary.LittleEndian, c.Buf); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
