package galaxy

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"
)

// GalacTICS frequency tables (freqdbh.dat) store one row per radius with
// the columns used here being radius, the halo angular frequency, the total
// circular velocity and the bulge circular velocity. Velocities are in code
// units and are converted with a single velocity scale.
const (
	radiusCol    = 0
	omegaHaloCol = 1
	vTotalCol    = 4
	vBulgeCol    = 5
)

// RotationCurve is a circular-velocity decomposition of a disk galaxy into
// its mass components. Radii are in kpc and velocities in km/s.
type RotationCurve struct {
	R     []float64
	Total []float64
	Disk  []float64
	Bulge []float64
	Halo  []float64
}

// ReadRotationCurve reads a freqdbh-style table and decomposes the total
// circular velocity into bulge, halo and disk contributions. velScale
// converts code velocities to km/s and radScale converts table radii to kpc.
//
// The halo velocity is Omega_halo * R, and the disk is what is left after
// removing bulge and halo in quadrature:
//
//	v_disk^2 = v_tot^2 - (v_bulge^2 + v_halo^2)
//
// Rows where the right side is slightly negative (a product of the finite
// precision of the input table) are clamped to zero.
func ReadRotationCurve(file string, velScale, radScale float64) (*RotationCurve, error) {
	cols, err := table.ReadTable(
		file, []int{radiusCol, omegaHaloCol, vTotalCol, vBulgeCol}, nil,
	)
	if err != nil {
		return nil, err
	}

	rads, omegas, vts, vbs := cols[0], cols[1], cols[2], cols[3]
	if len(rads) == 0 {
		return nil, fmt.Errorf("galaxy: %s contains no rows", file)
	}

	rc := &RotationCurve{
		R:     make([]float64, len(rads)),
		Total: make([]float64, len(rads)),
		Disk:  make([]float64, len(rads)),
		Bulge: make([]float64, len(rads)),
		Halo:  make([]float64, len(rads)),
	}

	for i := range rads {
		rc.R[i] = rads[i] * radScale
		rc.Total[i] = vts[i] * velScale
		rc.Bulge[i] = vbs[i] * velScale
		rc.Halo[i] = omegas[i] * rads[i] * velScale

		rest := rc.Bulge[i]*rc.Bulge[i] + rc.Halo[i]*rc.Halo[i]
		rc.Disk[i] = math.Sqrt(math.Max(rc.Total[i]*rc.Total[i]-rest, 0))
	}

	return rc, nil
}
