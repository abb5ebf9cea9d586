package cosmo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// flatLCDMTime is the closed-form solution for a flat Lambda-CDM universe,
// t(a) = (2/3) / sqrt(OmegaL) * asinh(sqrt(OmegaL/OmegaM) a^(3/2)).
func flatLCDMTime(omegaM, omegaL, a float64) float64 {
	return 2.0 / 3.0 / math.Sqrt(omegaL) *
		math.Asinh(math.Sqrt(omegaL/omegaM)*math.Pow(a, 1.5))
}

func TestAnalyticAges(t *testing.T) {
	assert.Equal(t, 2.0/3.0, EinsteinDeSitter{}.Age())
	assert.Equal(t, 1.0, Milne{}.Age())
}

func TestLambdaCDMAge(t *testing.T) {
	m := LambdaCDM{OmegaM: 0.3, OmegaL: 0.7}
	want := flatLCDMTime(0.3, 0.7, 1)
	assert.InDelta(t, want, m.Age(), 1e-4)
	// The concordance age is famously close to one Hubble time.
	assert.InDelta(t, 0.964, m.Age(), 1e-3)
}

func TestLambdaCDMAgainstClosedForm(t *testing.T) {
	m := LambdaCDM{OmegaM: 0.3, OmegaL: 0.7}
	for a := 0.05; a <= 2.5; a += 0.05 {
		want := flatLCDMTime(0.3, 0.7, a)
		assert.InDelta(t, want, m.Time(a), 1e-4, "a=%g", a)
	}
}

func TestLambdaCDMMatterLimit(t *testing.T) {
	// With OmegaL ~ 0 the model must approach Einstein-de Sitter.
	m := LambdaCDM{OmegaM: 1, OmegaL: 1e-10}
	eds := EinsteinDeSitter{}
	for _, a := range []float64{0.1, 0.5, 1, 2} {
		assert.InDelta(t, eds.Time(a), m.Time(a), 1e-4, "a=%g", a)
	}
}

func TestTimeAtZeroScaleFactor(t *testing.T) {
	models := []Model{
		EinsteinDeSitter{}, Milne{}, LambdaCDM{OmegaM: 0.3, OmegaL: 0.7},
	}
	for _, m := range models {
		assert.Equal(t, 0.0, m.Time(0), m.Name())
		assert.Equal(t, 0.0, m.Time(-1), m.Name())
	}
}

func TestHistory(t *testing.T) {
	m := Milne{}
	ts, as := History(m, 0.01, 2.5, 300)

	assert.Len(t, ts, 300)
	assert.Len(t, as, 300)
	assert.Equal(t, 0.01, as[0])
	assert.Equal(t, 2.5, as[len(as)-1])
	for i := range as {
		assert.Equal(t, as[i], ts[i])
	}
}

func TestHistoryMonotonic(t *testing.T) {
	m := LambdaCDM{OmegaM: 0.3, OmegaL: 0.7}
	ts, _ := History(m, 0.01, 2.5, 100)
	for i := 1; i < len(ts); i++ {
		assert.Greater(t, ts[i], ts[i-1])
	}
}
