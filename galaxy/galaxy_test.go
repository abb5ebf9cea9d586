package galaxy

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const freqTable = `# R omega_h kappa nu v_total v_bulge
0.0  0.50  0 0  0.0  0.0
1.0  0.30  0 0  1.0  0.4
2.0  0.25  0 0  1.2  0.3
`

const clampedFreqTable = `# decomposition with v_tot below the components
1.0  1.00  0 0  0.5  0.6
`

func writeTable(t *testing.T, text string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "freqdbh.dat")
	require.NoError(t, os.WriteFile(file, []byte(text), 0644))
	return file
}

func TestReadRotationCurve(t *testing.T) {
	rc, err := ReadRotationCurve(writeTable(t, freqTable), 100, 2)
	require.NoError(t, err)
	require.Len(t, rc.R, 3)

	assert.Equal(t, []float64{0, 2, 4}, rc.R)
	assert.Equal(t, []float64{0, 100, 120}, rc.Total)
	assert.Equal(t, []float64{0, 40, 30}, rc.Bulge)
	assert.InDeltaSlice(t, []float64{0, 30, 50}, rc.Halo, 1e-10)

	// v_disk^2 = v_tot^2 - v_bulge^2 - v_halo^2 row by row.
	assert.InDelta(t, math.Sqrt(7500), rc.Disk[1], 1e-10)
	assert.InDelta(t, math.Sqrt(11000), rc.Disk[2], 1e-10)
}

func TestRotationCurveClampsImaginaryDisk(t *testing.T) {
	rc, err := ReadRotationCurve(writeTable(t, clampedFreqTable), 100, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rc.Disk[0])
}

func TestReadMassProfile(t *testing.T) {
	mp, err := ReadMassProfile(writeTable(t, freqTable), 100)
	require.NoError(t, err)
	require.Len(t, mp.R, 3)

	// The R = 0 row carries no mass.
	assert.Equal(t, 0.0, mp.Total[0])
	assert.Equal(t, 0.0, mp.Disk[0])

	// M(<R) = R v^2 / G.
	assert.InDelta(t, 1*100*100/G, mp.Total[1], 1e-3)
	assert.InDelta(t, 1*40*40/G, mp.Bulge[1], 1e-3)
	assert.InDelta(t, 1*30*30/G, mp.Halo[1], 1e-3)
	assert.InDelta(t, 1*(100*100-40*40-30*30)/G, mp.Disk[1], 1e-3)

	// Components must account for the full dynamical mass.
	for i := range mp.R {
		sum := mp.Disk[i] + mp.Bulge[i] + mp.Halo[i]
		assert.InDelta(t, mp.Total[i], sum, 1e-3, "row %d", i)
	}
}

func TestMassProfileScalesAsVelocitySquared(t *testing.T) {
	a, err := ReadMassProfile(writeTable(t, freqTable), 220)
	require.NoError(t, err)
	b, err := ReadMassProfile(writeTable(t, freqTable), 300)
	require.NoError(t, err)

	ratio := (300.0 / 220.0) * (300.0 / 220.0)
	for i := range a.R {
		if a.Total[i] == 0 {
			continue
		}
		assert.InEpsilon(t, ratio, b.Total[i]/a.Total[i], 1e-10)
	}
}

func TestToomreProfile(t *testing.T) {
	text := `# R Q
0.5  2.0
1.5  1.0
2.5  0.5
3.5  0.5
4.5  1.5
5.5  3.0
`
	file := filepath.Join(t.TempDir(), "toomre.dat")
	require.NoError(t, os.WriteFile(file, []byte(text), 0644))

	p, err := ReadToomreProfile(file)
	require.NoError(t, err)

	r, q := p.MinQ()
	assert.Equal(t, 0.5, q)
	assert.Equal(t, 2.5, r)
	assert.True(t, p.Unstable())

	ranges := p.UnstableRanges()
	require.Len(t, ranges, 1)
	// Q = 1 at R = 1.5 exactly and, by interpolation, at R = 4.0.
	assert.InDelta(t, 1.5, ranges[0][0], 1e-10)
	assert.InDelta(t, 4.0, ranges[0][1], 1e-10)
}

func TestToomreStableDisk(t *testing.T) {
	text := "0.5 2.0\n1.5 1.8\n2.5 2.2\n"
	file := filepath.Join(t.TempDir(), "toomre.dat")
	require.NoError(t, os.WriteFile(file, []byte(text), 0644))

	p, err := ReadToomreProfile(file)
	require.NoError(t, err)

	assert.False(t, p.Unstable())
	assert.Empty(t, p.UnstableRanges())
}

func TestToomreUnstableAtOuterEdge(t *testing.T) {
	text := "0.5 2.0\n1.5 0.8\n"
	file := filepath.Join(t.TempDir(), "toomre.dat")
	require.NoError(t, os.WriteFile(file, []byte(text), 0644))

	p, err := ReadToomreProfile(file)
	require.NoError(t, err)

	ranges := p.UnstableRanges()
	require.Len(t, ranges, 1)
	assert.InDelta(t, 1.5, ranges[0][1], 1e-10)
}

func TestMissingTable(t *testing.T) {
	_, err := ReadRotationCurve("does_not_exist.dat", 220, 4.5)
	assert.Error(t, err)
	_, err = ReadMassProfile("does_not_exist.dat", 300)
	assert.Error(t, err)
	_, err = ReadToomreProfile("does_not_exist.dat")
	assert.Error(t, err)
}
