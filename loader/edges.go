package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// LoadEdges reads a CSV edge list — one undirected edge per line, two
// comma-separated non-negative integers — and returns a symmetrized
// adjacency list sized nodeSize, each neighbor list sorted ascending.
// Edges with an endpoint >= nodeSize are dropped without an error (a
// warning logs how many), since nodeSize is the vertex count a dataset
// declares (valid ids are 0..nodeSize-1), which can exceed the number of
// ids actually present in the file.
func LoadEdges(path string, nodeSize int) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: opening edge file %q: %w", path, err)
	}
	defer f.Close()

	edges := make([][]int, nodeSize)
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	dropped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: reading %q: %w", path, err)
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("loader: %q: %w", path, ErrTooFewFields)
		}

		u, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("loader: parsing edge endpoint in %q: %w", path, err)
		}
		v, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("loader: parsing edge endpoint in %q: %w", path, err)
		}

		if u < nodeSize && v < nodeSize {
			edges[u] = append(edges[u], v)
			edges[v] = append(edges[v], u)
		} else {
			dropped++
		}
	}

	for v := range edges {
		sort.Ints(edges[v])
	}

	if dropped > 0 {
		log.WithFields(log.Fields{"file": path, "dropped": dropped}).Warn("loader: dropped edges with an out-of-range endpoint")
	}
	log.WithFields(log.Fields{"file": path, "nodes": nodeSize}).Info("loader: edges loaded")

	return edges, nil
}
