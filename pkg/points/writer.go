package points

import (
	"bufio"
	"io"
	"strconv"

	"github.com/marekgalovic/pdist/pkg/math"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write emits one row per line in the format accepted by Load.
func Write(w io.Writer, m *math.Matrix) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.Rows(); i++ {
		for j, v := range m.Row(i) {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(formatFloat(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteVector emits one value per line.
func WriteVector(w io.Writer, v math.Vector) error {
	bw := bufio.NewWriter(w)
	for _, x := range v {
		if _, err := bw.WriteString(formatFloat(x)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
