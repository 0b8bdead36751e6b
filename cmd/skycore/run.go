package main

import (
	"fmt"
	"path/filepath"

	"github.com/nkiran-dev/skycore/dataset"
	"github.com/nkiran-dev/skycore/loader"
	"github.com/nkiran-dev/skycore/skygraph"
	"github.com/nkiran-dev/skycore/skyline"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, opts *options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	coreSize := opts.coreSize()
	log.WithFields(log.Fields{
		"coreSize":  coreSize,
		"groupSize": opts.groupSize,
		"dimension": opts.dimension,
	}).Info("parameters resolved")

	info, err := dataset.Lookup(opts.dataset)
	if err != nil {
		return err
	}
	log.WithField("dataset", info.Name).Info("dataset resolved")

	labelFile, err := dataset.LabelFile(opts.labelType, opts.dimension)
	if err != nil {
		return err
	}

	g, err := loadGraph(opts, info, labelFile)
	if err != nil {
		return err
	}

	communities, err := runAlgorithm(opts, g, coreSize)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "#Skyline Groups: %d\n", len(communities))
	return nil
}

func loadGraph(opts *options, info dataset.Info, labelFile string) (*skygraph.Graph, error) {
	defer startPhase("Preprocessing Time")()

	edges, err := loader.LoadEdges(filepath.Join(opts.datasetsDir, info.EdgesFile), info.NodeSize)
	if err != nil {
		return nil, err
	}
	labels, err := loader.LoadLabels(filepath.Join(opts.datasetsDir, labelFile), info.NodeSize, opts.dimension)
	if err != nil {
		return nil, err
	}

	g, err := skygraph.NewGraph(edges, labels)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func runAlgorithm(opts *options, g *skygraph.Graph, coreSize int) ([][]int, error) {
	switch opts.algorithm {
	case algorithmSequential:
		defer startPhase("SK-Core Execution Time")()
		return skyline.GetSkylineCommunities(g, coreSize, opts.groupSize)
	case algorithmParallel:
		defer startPhase("PK-Core Execution Time")()
		return skyline.GetSkylineCommunitiesParallel(g, coreSize, opts.groupSize, opts.nThreads)
	case algorithmBaseline:
		defer startPhase("Baseline Execution Time")()
		return GetSkylineCommunitiesBaseline(g, coreSize, opts.groupSize), nil
	default:
		return nil, fmt.Errorf("skycore: invalid algorithm: %d", opts.algorithm)
	}
}
