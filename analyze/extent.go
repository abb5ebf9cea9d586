package analyze

import (
	"encoding/binary"
	"fmt"
	"log"

	"gonum.org/v1/gonum/stat"

	"github.com/albertmrtnz25/galkit/snapshot"
)

// Extent measures the spatial size of a particle population at one output
// time: the standard deviation of the positions along each axis. For a
// disk seen face-on in x-y, Std[0] and Std[1] trace the radial extent and
// Std[2] the thickness.
type Extent struct {
	Time float64
	Std  [3]float64
}

// ExtentSeries reads every snapshot in dir and measures the extent of the
// given particle type through time. Files that cannot be read are logged
// and skipped, so one corrupt output does not kill a long run; it is an
// error for every file to fail.
func ExtentSeries(dir string, t snapshot.Type, order binary.ByteOrder) ([]Extent, error) {
	files, err := snapshot.Files(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("analyze: no snapshot files in %s", dir)
	}

	var out []Extent
	for _, file := range files {
		s, err := snapshot.Read(file, order)
		if err != nil {
			log.Printf("analyze: skipping %v", err)
			continue
		}

		x := s.Part(t).X
		if len(x) == 0 {
			log.Printf("analyze: skipping %s: no %s particles", file, t)
			continue
		}
		out = append(out, Extent{Time: s.Header.Time, Std: axisStds(x)})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf(
			"analyze: none of the %d snapshots in %s were readable",
			len(files), dir,
		)
	}
	return out, nil
}

// LastReadable returns the last snapshot in dir that can be read, walking
// the file list backwards past corrupt outputs.
func LastReadable(dir string, order binary.ByteOrder) (*snapshot.Snapshot, error) {
	files, err := snapshot.Files(dir)
	if err != nil {
		return nil, err
	}

	for i := len(files) - 1; i >= 0; i-- {
		s, err := snapshot.Read(files[i], order)
		if err != nil {
			log.Printf("analyze: skipping %v", err)
			continue
		}
		return s, nil
	}
	return nil, fmt.Errorf("analyze: no readable snapshot in %s", dir)
}

func axisStds(x [][3]float32) [3]float64 {
	buf := make([]float64, len(x))
	var std [3]float64
	for axis := 0; axis < 3; axis++ {
		for i := range x {
			buf[i] = float64(x[i][axis])
		}
		std[axis] = stat.StdDev(buf, nil)
	}
	return std
}
