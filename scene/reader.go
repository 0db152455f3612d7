package scene

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/maidamai0/bvh/log"
	"github.com/maidamai0/bvh/types"
)

var logger = log.New("scene")

// Triangle files are flat lists of whitespace-separated floats, nine per
// triangle, terminated by a line starting with this sentinel.
const endOfModelSentinel float32 = 999

// Load reads a triangle model from a .tri file. Parsing stops at the
// sentinel or at the end of the file, whichever comes first.
func Load(path string) ([]Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)

	next := func() (float32, bool, error) {
		if !scanner.Scan() {
			return 0, false, scanner.Err()
		}
		v, err := strconv.ParseFloat(scanner.Text(), 32)
		if err != nil {
			return 0, false, fmt.Errorf("scene: %s: %v", path, err)
		}
		return float32(v), true, nil
	}

	var triangles []Triangle
	for {
		var points [9]float32
		var ok bool
		for i := range points {
			points[i], ok, err = next()
			if err != nil {
				return nil, err
			}
			if !ok {
				if i == 0 {
					logger.Noticef("loaded %d triangles from %s", len(triangles), path)
					return triangles, nil
				}
				return nil, fmt.Errorf("scene: %s: truncated triangle after %d values", path, i)
			}
			if i == 0 && points[0] == endOfModelSentinel {
				logger.Noticef("loaded %d triangles from %s", len(triangles), path)
				return triangles, nil
			}
		}

		triangles = append(triangles, Triangle{
			V0: types.XYZ(points[0], points[1], points[2]),
			V1: types.XYZ(points[3], points[4], points[5]),
			V2: types.XYZ(points[6], points[7], points[8]),
		})
	}
}
