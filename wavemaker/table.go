package wavemaker

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/RyanBlaney/jonswap/algorithms/spectral"
)

// TableHeader is the first line of a sampled spectrum table
const TableHeader = "w\tamp"

// WriteTable writes samples as a tab separated two-column table of (ω, density)
func WriteTable(w io.Writer, samples []spectral.SamplePoint) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, TableHeader); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}

	var line []byte
	for _, s := range samples {
		line = line[:0]
		line = strconv.AppendFloat(line, s.Frequency, 'g', -1, 64)
		line = append(line, '\t')
		line = strconv.AppendFloat(line, s.Density, 'g', -1, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("failed to write table row: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}
