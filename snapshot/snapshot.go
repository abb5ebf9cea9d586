package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
)

// Package snapshot reads and writes Gadget-2 format 1 snapshot files. A
// format 1 file is a sequence of blocks, each sandwiched between int32
// markers holding the block's byte count: a 256-byte header, then
// positions, velocities and IDs for every particle, with the particles of
// the six Gadget types stored back to back in type order. Types whose
// header mass is zero get their masses from an extra block after the IDs.

// Gadget particle types, in the order their particles appear in a file.
type Type int

const (
	Gas Type = iota
	Halo
	Disk
	Bulge
	Stars
	Bndry

	NumTypes = 6
)

var typeNames = [NumTypes]string{
	"gas", "halo", "disk", "bulge", "stars", "bndry",
}

func (t Type) String() string {
	if t < 0 || t >= NumTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType converts a (case-insensitive) type name to a Type.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if strings.EqualFold(name, n) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("snapshot: unknown particle type %q", name)
}

// headerSize is the byte count of a Gadget-2 header block. The opening
// marker of every format 1 file must hold this value, which is how
// format 1 files are recognized in the first place.
const headerSize = 256

// gadgetHeader is the exact on-disk layout of the header block.
type gadgetHeader struct {
	NPart                                     [6]uint32
	Mass                                      [6]float64
	Time, Redshift                            float64
	FlagSfr, FlagFeedback                     int32
	NPartTotal                                [6]uint32
	FlagCooling, NumFiles                     int32
	BoxSize, Omega0, OmegaLambda, HubbleParam float64
	FlagStellarAge, HashTabSize               int32

	Padding [88]byte
}

// Header describes a snapshot in standardized form.
type Header struct {
	// NPart is the particle count of each type in this file.
	NPart [NumTypes]int
	// Mass holds the uniform particle mass of each type, in code units. A
	// zero entry means the type's masses are stored per particle.
	Mass [NumTypes]float64

	Time, Redshift       float64
	BoxSize              float64
	OmegaM, OmegaL, H100 float64
	NFiles               int
}

// NTotal returns the number of particles of all types in the file.
func (h *Header) NTotal() int {
	n := 0
	for _, c := range h.NPart {
		n += c
	}
	return n
}

// nVariableMass counts the particles whose mass comes from the mass block
// rather than from the header.
func (h *Header) nVariableMass() int {
	n := 0
	for t := 0; t < NumTypes; t++ {
		if h.Mass[t] == 0 {
			n += h.NPart[t]
		}
	}
	return n
}

// offset returns the index of the first particle of type t within the
// contiguous particle arrays.
func (h *Header) offset(t Type) int {
	n := 0
	for i := Type(0); i < t; i++ {
		n += h.NPart[i]
	}
	return n
}

func (gh *gadgetHeader) standardize() *Header {
	h := &Header{}
	for t := 0; t < NumTypes; t++ {
		h.NPart[t] = int(gh.NPart[t])
		h.Mass[t] = gh.Mass[t]
	}
	h.Time = gh.Time
	h.Redshift = gh.Redshift
	h.BoxSize = gh.BoxSize
	h.OmegaM = gh.Omega0
	h.OmegaL = gh.OmegaLambda
	h.H100 = gh.HubbleParam
	h.NFiles = int(gh.NumFiles)
	return h
}

func (h *Header) raw() *gadgetHeader {
	gh := &gadgetHeader{}
	for t := 0; t < NumTypes; t++ {
		gh.NPart[t] = uint32(h.NPart[t])
		gh.NPartTotal[t] = uint32(h.NPart[t])
		gh.Mass[t] = h.Mass[t]
	}
	gh.Time = h.Time
	gh.Redshift = h.Redshift
	gh.BoxSize = h.BoxSize
	gh.Omega0 = h.OmegaM
	gh.OmegaLambda = h.OmegaL
	gh.HubbleParam = h.H100
	gh.NumFiles = int32(h.NFiles)
	if gh.NumFiles == 0 {
		gh.NumFiles = 1
	}
	return gh
}

// Snapshot is a fully read snapshot file. X, V, ID and M hold every
// particle in file order; Part gives per-type views into them.
type Snapshot struct {
	Header Header

	X, V [][3]float32
	ID   []int64
	// M is the per-particle mass in code units, filled from the header for
	// uniform-mass types and from the mass block otherwise.
	M []float64
}

// Particles is a view of the particle arrays for a single type. The slices
// alias the Snapshot's storage.
type Particles struct {
	X, V [][3]float32
	ID   []int64
	M    []float64
}

// Part returns the particles of one type.
func (s *Snapshot) Part(t Type) Particles {
	lo := s.Header.offset(t)
	hi := lo + s.Header.NPart[t]
	return Particles{
		X: s.X[lo:hi], V: s.V[lo:hi], ID: s.ID[lo:hi], M: s.M[lo:hi],
	}
}

// readInt32 returns a single 32-bit integer read with the given endianness.
func readInt32(r io.Reader, order binary.ByteOrder) (int32, error) {
	var n int32
	err := binary.Read(r, order, &n)
	return n, err
}

// readBlock reads one marker-delimited block into data, whose binary size
// must be size bytes. Mismatched opening and closing markers mean the file
// is corrupt or is not a format 1 file at all.
func readBlock(r io.Reader, order binary.ByteOrder, name string, size int, data interface{}) error {
	open, err := readInt32(r, order)
	if err != nil {
		return fmt.Errorf("reading %s block: %v", name, err)
	}
	if int(open) != size {
		return fmt.Errorf(
			"%s block is %d bytes, expected %d", name, open, size,
		)
	}
	if err := binary.Read(r, order, data); err != nil {
		return fmt.Errorf("reading %s block: %v", name, err)
	}
	end, err := readInt32(r, order)
	if err != nil {
		return fmt.Errorf("reading %s block: %v", name, err)
	}
	if end != open {
		return fmt.Errorf(
			"%s block closes with %d bytes, opened with %d",
			name, end, open,
		)
	}
	return nil
}

func readHeader(r io.Reader, order binary.ByteOrder) (*Header, error) {
	open, err := readInt32(r, order)
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	if open != headerSize {
		return nil, fmt.Errorf(
			"header block is %d bytes, not %d: not a format 1 "+
				"Gadget-2 snapshot", open, headerSize,
		)
	}

	gh := &gadgetHeader{}
	if err := binary.Read(r, order, gh); err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}

	end, err := readInt32(r, order)
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	if end != headerSize {
		return nil, fmt.Errorf("header block closes with %d bytes", end)
	}

	return gh.standardize(), nil
}

// ReadHeader reads only the header of the snapshot at file. All Gadget
// files in the wild are little endian, but the byte order is a parameter
// for the occasional exotic machine.
func ReadHeader(file string, order binary.ByteOrder) (*Header, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h, err := readHeader(bufio.NewReader(f), order)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", file, err)
	}
	return h, nil
}

// Read reads the full snapshot at file: header, positions, velocities, IDs
// and masses. The ID width (32- or 64-bit) is detected from the ID block's
// byte count.
func Read(file string, order binary.ByteOrder) (*Snapshot, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	s, err := read(bufio.NewReader(f), order, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %v", file, err)
	}
	return s, nil
}

func read(r io.Reader, order binary.ByteOrder, size int64) (*Snapshot, error) {
	h, err := readHeader(r, order)
	if err != nil {
		return nil, err
	}

	n := h.NTotal()
	// A corrupt header can claim particle counts whose arrays would
	// exhaust memory before the block markers get a chance to reject the
	// file. The smallest possible payload is positions, velocities and
	// 32-bit IDs, each with two 4-byte markers, after the framed header.
	need := int64(n)*(12+12+4) + 6*4 + headerSize + 8
	if need > size {
		return nil, fmt.Errorf(
			"header counts %d particles, which needs at least %d bytes, "+
				"but the file holds %d", n, need, size,
		)
	}

	s := &Snapshot{
		Header: *h,
		X:      make([][3]float32, n),
		V:      make([][3]float32, n),
		ID:     make([]int64, n),
		M:      make([]float64, n),
	}

	if err := readBlock(r, order, "position", 12*n, s.X); err != nil {
		return nil, err
	}
	if err := readBlock(r, order, "velocity", 12*n, s.V); err != nil {
		return nil, err
	}
	if err := s.readIDs(r, order, n); err != nil {
		return nil, err
	}
	if err := s.readMasses(r, order); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Snapshot) readIDs(r io.Reader, order binary.ByteOrder, n int) error {
	open, err := readInt32(r, order)
	if err != nil {
		return fmt.Errorf("reading id block: %v", err)
	}

	switch int(open) {
	case 4 * n:
		buf := make([]uint32, n)
		if err := binary.Read(r, order, buf); err != nil {
			return fmt.Errorf("reading id block: %v", err)
		}
		for i, id := range buf {
			s.ID[i] = int64(id)
		}
	case 8 * n:
		buf := make([]uint64, n)
		if err := binary.Read(r, order, buf); err != nil {
			return fmt.Errorf("reading id block: %v", err)
		}
		for i, id := range buf {
			s.ID[i] = int64(id)
		}
	default:
		return fmt.Errorf(
			"id block is %d bytes for %d particles: ids are neither "+
				"32- nor 64-bit", open, n,
		)
	}

	end, err := readInt32(r, order)
	if err != nil {
		return fmt.Errorf("reading id block: %v", err)
	}
	if end != open {
		return fmt.Errorf(
			"id block closes with %d bytes, opened with %d", end, open,
		)
	}
	return nil
}

func (s *Snapshot) readMasses(r io.Reader, order binary.ByteOrder) error {
	h := &s.Header
	nVar := h.nVariableMass()

	var varMasses []float32
	if nVar > 0 {
		varMasses = make([]float32, nVar)
		err := readBlock(r, order, "mass", 4*nVar, varMasses)
		if err != nil {
			return err
		}
	}

	i, j := 0, 0
	for t := Type(0); t < NumTypes; t++ {
		for k := 0; k < h.NPart[t]; k++ {
			if h.Mass[t] != 0 {
				s.M[i] = h.Mass[t]
			} else {
				s.M[i] = float64(varMasses[j])
				j++
			}
			i++
		}
	}
	return nil
}

// Files returns the paths of the snapshot files in dir, sorted by name.
// Only names starting with "snapshot" count, which is Gadget's own output
// naming convention.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "snapshot") {
			out = append(out, path.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
