package galaxy

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"
)

// G is Newton's constant in kpc (km/s)^2 / Msun.
const G = 4.301e-6

// MassProfile contains cumulative dynamical masses M(<R) in Msun for each
// component of a disk galaxy. Radii are in kpc.
type MassProfile struct {
	R     []float64
	Total []float64
	Disk  []float64
	Bulge []float64
	Halo  []float64
}

// ReadMassProfile reads a freqdbh-style table and converts the circular
// velocities into cumulative masses through M(<R) = R v^2 / G. Table radii
// are taken to already be in kpc; velScale converts code velocities to km/s.
//
// Unlike ReadRotationCurve, the disk is isolated by subtracting bulge and
// halo separately, v_d^2 = v_tot^2 - v_b^2 - v_h^2, which is how the
// dynamical mass budget is usually quoted.
func ReadMassProfile(file string, velScale float64) (*MassProfile, error) {
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

	mp := &MassProfile{
		R:     make([]float64, len(rads)),
		Total: make([]float64, len(rads)),
		Disk:  make([]float64, len(rads)),
		Bulge: make([]float64, len(rads)),
		Halo:  make([]float64, len(rads)),
	}

	for i := range rads {
		r := rads[i]
		vt := vts[i] * velScale
		vb := vbs[i] * velScale
		vh := omegas[i] * r * velScale
		vd2 := math.Max(vt*vt-vb*vb-vh*vh, 0)

		mp.R[i] = r
		if r <= 0 {
			// M(<0) is zero by definition; also avoids 0 * inf at the
			// innermost row of some tables.
			continue
		}
		mp.Total[i] = r * vt * vt / G
		mp.Bulge[i] = r * vb * vb / G
		mp.Halo[i] = r * vh * vh / G
		mp.Disk[i] = r * vd2 / G
	}

	return mp, nil
}
