package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nkiran-dev/skycore/point"
	log "github.com/sirupsen/logrus"
)

// LoadLabels reads a CSV label table — one point per line, dimension
// comma-separated integers — and returns the first nodeSize lines as
// labels. A file with fewer than nodeSize lines leaves the remaining
// entries as zero-value (nil) labels.
func LoadLabels(path string, nodeSize, dimension int) ([]point.Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: opening label file %q: %w", path, err)
	}
	defer f.Close()

	labels := make([]point.Label, nodeSize)
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	read := 0
	for i := 0; i < nodeSize; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: reading %q: %w", path, err)
		}
		if len(row) != dimension {
			return nil, fmt.Errorf("loader: row %d of %q: %w", i, path, ErrLabelDimensionMismatch)
		}

		label := make(point.Label, dimension)
		for d, field := range row {
			coord, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("loader: parsing label coordinate in %q: %w", path, err)
			}
			label[d] = coord
		}
		labels[i] = label
		read++
	}

	if read < nodeSize {
		log.WithFields(log.Fields{"file": path, "read": read, "nodeSize": nodeSize}).Warn("loader: label file shorter than nodeSize")
	}
	log.WithFields(log.Fields{"file": path, "dimension": dimension}).Info("loader: labels loaded")

	return labels, nil
}
