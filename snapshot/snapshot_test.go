package snapshot

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSnapshot builds a two-type snapshot: two uniform-mass halo particles
// followed by three disk particles with explicit masses.
func testSnapshot() *Snapshot {
	s := &Snapshot{
		Header: Header{
			NPart:    [NumTypes]int{0, 2, 3, 0, 0, 0},
			Mass:     [NumTypes]float64{0, 1.5, 0, 0, 0, 0},
			Time:     0.25,
			Redshift: 3,
			BoxSize:  0,
			OmegaM:   0.3, OmegaL: 0.7, H100: 0.7,
			NFiles: 1,
		},
	}
	for i := 0; i < 5; i++ {
		f := float32(i)
		s.X = append(s.X, [3]float32{f, f + 0.25, -f})
		s.V = append(s.V, [3]float32{-f, 2 * f, f / 2})
		s.ID = append(s.ID, int64(i+1))
	}
	s.M = []float64{1.5, 1.5, 0.125, 0.25, 0.5}
	return s
}

func writeTestSnapshot(t *testing.T, s *Snapshot) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "snapshot_000")
	require.NoError(t, Write(file, binary.LittleEndian, s))
	return file
}

func TestRoundTrip(t *testing.T) {
	s := testSnapshot()
	file := writeTestSnapshot(t, s)

	r, err := Read(file, binary.LittleEndian)
	require.NoError(t, err)

	assert.Equal(t, s.Header.NPart, r.Header.NPart)
	assert.Equal(t, s.Header.Mass, r.Header.Mass)
	assert.Equal(t, 0.25, r.Header.Time)
	assert.Equal(t, 3.0, r.Header.Redshift)
	assert.Equal(t, 0.3, r.Header.OmegaM)
	assert.Equal(t, 0.7, r.Header.OmegaL)
	assert.Equal(t, 0.7, r.Header.H100)

	assert.Equal(t, s.X, r.X)
	assert.Equal(t, s.V, r.V)
	assert.Equal(t, s.ID, r.ID)
	for i := range s.M {
		assert.InDelta(t, s.M[i], r.M[i], 1e-7, "mass %d", i)
	}
}

func TestRoundTripBigEndian(t *testing.T) {
	s := testSnapshot()
	file := filepath.Join(t.TempDir(), "snapshot_000")
	require.NoError(t, Write(file, binary.BigEndian, s))

	r, err := Read(file, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, s.X, r.X)

	// Reading with the wrong byte order must fail the marker check, not
	// produce garbage.
	_, err = Read(file, binary.LittleEndian)
	assert.Error(t, err)
}

func TestReadHeaderOnly(t *testing.T) {
	s := testSnapshot()
	file := writeTestSnapshot(t, s)

	h, err := ReadHeader(file, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, s.Header, *h)
	assert.Equal(t, 5, h.NTotal())
}

func TestWideIDs(t *testing.T) {
	s := testSnapshot()
	s.ID[4] = 1 << 40
	file := writeTestSnapshot(t, s)

	r, err := Read(file, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), r.ID[4])
	assert.Equal(t, s.ID, r.ID)
}

func TestPartViews(t *testing.T) {
	s := testSnapshot()

	halo := s.Part(Halo)
	require.Len(t, halo.X, 2)
	assert.Equal(t, s.X[0], halo.X[0])
	assert.Equal(t, []float64{1.5, 1.5}, halo.M)

	disk := s.Part(Disk)
	require.Len(t, disk.X, 3)
	assert.Equal(t, s.X[2], disk.X[0])
	assert.Equal(t, s.ID[2:5], disk.ID)
	assert.Equal(t, []float64{0.125, 0.25, 0.5}, disk.M)

	assert.Empty(t, s.Part(Gas).X)
	assert.Empty(t, s.Part(Bndry).X)
}

func TestNotAFormat1File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "snapshot_junk")
	require.NoError(t, os.WriteFile(file, []byte("CDF\x01 definitely not gadget"), 0644))

	_, err := Read(file, binary.LittleEndian)
	assert.Error(t, err)
	_, err = ReadHeader(file, binary.LittleEndian)
	assert.Error(t, err)
}

func TestTruncatedFile(t *testing.T) {
	s := testSnapshot()
	file := writeTestSnapshot(t, s)

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	trunc := filepath.Join(t.TempDir(), "snapshot_trunc")
	require.NoError(t, os.WriteFile(trunc, raw[:len(raw)-40], 0644))

	_, err = Read(trunc, binary.LittleEndian)
	assert.Error(t, err)

	// The header alone is intact, so a header read still works.
	_, err = ReadHeader(trunc, binary.LittleEndian)
	assert.NoError(t, err)
}

func TestRejectsImpossibleHeaderCounts(t *testing.T) {
	// A corrupt header claiming billions of particles per type must be
	// rejected from the file size alone, before any allocation.
	gh := &gadgetHeader{}
	for i := range gh.NPart {
		gh.NPart[i] = 1<<31 - 1
		gh.Mass[i] = 1
	}

	buf := &bytes.Buffer{}
	require.NoError(t, binary.Write(buf, binary.LittleEndian, int32(headerSize)))
	require.NoError(t, binary.Write(buf, binary.LittleEndian, gh))
	require.NoError(t, binary.Write(buf, binary.LittleEndian, int32(headerSize)))

	file := filepath.Join(t.TempDir(), "snapshot_000")
	require.NoError(t, os.WriteFile(file, buf.Bytes(), 0644))

	_, err := Read(file, binary.LittleEndian)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bytes")

	// The header itself is well formed, so a header read still works.
	h, err := ReadHeader(file, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, 1<<31-1, h.NPart[0])
}

func TestWriteRejectsMismatchedArrays(t *testing.T) {
	s := testSnapshot()
	s.X = s.X[:3]
	err := Write(filepath.Join(t.TempDir(), "snapshot_bad"),
		binary.LittleEndian, s)
	assert.Error(t, err)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"snapshot_002", "snapshot_000", "snapshot_001", "README", "ic.dat",
	} {
		require.NoError(t,
			os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, err := Files(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "snapshot_000"), files[0])
	assert.Equal(t, filepath.Join(dir, "snapshot_002"), files[2])

	_, err = Files(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("disk")
	require.NoError(t, err)
	assert.Equal(t, Disk, typ)

	typ, err = ParseType("Stars")
	require.NoError(t, err)
	assert.Equal(t, Stars, typ)

	_, err = ParseType("dust")
	assert.Error(t, err)

	assert.Equal(t, "bulge", Bulge.String())
	assert.Equal(t, "Type(9)", Type(9).String())
}
