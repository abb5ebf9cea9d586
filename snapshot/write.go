package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// Write writes s to file as a format 1 Gadget-2 snapshot. IDs are written
// as 32-bit integers when every ID fits in one, and as 64-bit integers
// otherwise; masses of types whose header mass is zero go into a trailing
// mass block.
func Write(file string, order binary.ByteOrder, s *Snapshot) error {
	n := s.Header.NTotal()
	if len(s.X) != n || len(s.V) != n || len(s.ID) != n || len(s.M) != n {
		return fmt.Errorf(
			"snapshot: header counts %d particles, arrays hold "+
				"%d/%d/%d/%d", n, len(s.X), len(s.V), len(s.ID), len(s.M),
		)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := write(w, order, s); err != nil {
		return fmt.Errorf("%s: %v", file, err)
	}
	return w.Flush()
}

func write(w *bufio.Writer, order binary.ByteOrder, s *Snapshot) error {
	n := s.Header.NTotal()

	err := writeBlock(w, order, headerSize, s.Header.raw())
	if err != nil {
		return err
	}
	if err := writeBlock(w, order, 12*n, s.X); err != nil {
		return err
	}
	if err := writeBlock(w, order, 12*n, s.V); err != nil {
		return err
	}
	if err := writeIDs(w, order, s.ID); err != nil {
		return err
	}
	return writeMasses(w, order, s)
}

func writeBlock(w *bufio.Writer, order binary.ByteOrder, size int, data interface{}) error {
	if err := binary.Write(w, order, int32(size)); err != nil {
		return err
	}
	if err := binary.Write(w, order, data); err != nil {
		return err
	}
	return binary.Write(w, order, int32(size))
}

func writeIDs(w *bufio.Writer, order binary.ByteOrder, ids []int64) error {
	wide := false
	for _, id := range ids {
		if id < 0 || id >= 1<<32 {
			wide = true
			break
		}
	}

	if wide {
		buf := make([]uint64, len(ids))
		for i, id := range ids {
			buf[i] = uint64(id)
		}
		return writeBlock(w, order, 8*len(ids), buf)
	}
	buf := make([]uint32, len(ids))
	for i, id := range ids {
		buf[i] = uint32(id)
	}
	return writeBlock(w, order, 4*len(ids), buf)
}

func writeMasses(w *bufio.Writer, order binary.ByteOrder, s *Snapshot) error {
	h := &s.Header
	nVar := h.nVariableMass()
	if nVar == 0 {
		return nil
	}

	buf := make([]float32, 0, nVar)
	i := 0
	for t := Type(0); t < NumTypes; t++ {
		for k := 0; k < h.NPart[t]; k++ {
			if h.Mass[t] == 0 {
				buf = append(buf, float32(s.M[i]))
			}
			i++
		}
	}
	return writeBlock(w, order, 4*nVar, buf)
}
