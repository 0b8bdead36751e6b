package dataset_test

import (
	"testing"

	"github.com/nkiran-dev/skycore/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownDatasets(t *testing.T) {
	info, err := dataset.Lookup(5)
	require.NoError(t, err)
	assert.Equal(t, "Casestudy", info.Name)
	assert.Equal(t, 5856, info.NodeSize)

	info, err = dataset.Lookup(14)
	require.NoError(t, err)
	assert.Equal(t, "CitPatent", info.Name)
	assert.Equal(t, 6009555, info.NodeSize)
}

func TestLookup_UnknownDataset(t *testing.T) {
	_, err := dataset.Lookup(99)
	require.ErrorIs(t, err, dataset.ErrUnknownDataset)
}

func TestLabelFile_FormatsFragmentAndDimension(t *testing.T) {
	name, err := dataset.LabelFile(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "corr-scale=0.5-3d.csv", name)
}

func TestLabelFile_UnknownLabelType(t *testing.T) {
	_, err := dataset.LabelFile(9, 3)
	require.ErrorIs(t, err, dataset.ErrUnknownLabelType)
}
