package dataset

import "fmt"

// Info describes a named dataset's edge file and vertex count.
// NodeSize is the number of vertex ids the dataset declares (valid ids
// are 0..NodeSize-1), which can exceed the number of ids actually
// present in the edge file.
type Info struct {
	Name      string
	EdgesFile string
	NodeSize  int
}

// catalogue reproduces the dataset switch from the original driver
// verbatim: dataset id -> edge file path and declared node size.
var catalogue = map[int]Info{
	4:  {Name: "YouTube", EdgesFile: "com-youtube.ungraph_undirected.csv", NodeSize: 1157828},
	5:  {Name: "Casestudy", EdgesFile: "case_study_edges.csv", NodeSize: 5856},
	10: {Name: "LiveJournal", EdgesFile: "LiveJournal_undirected.csv", NodeSize: 4847571},
	11: {Name: "DBLP", EdgesFile: "dblp_undirected.csv", NodeSize: 425957},
	12: {Name: "Amazon", EdgesFile: "amazon_undirected.csv", NodeSize: 735324},
	13: {Name: "WikiTalk", EdgesFile: "wiki_talk_undirected.csv", NodeSize: 2394385},
	14: {Name: "CitPatent", EdgesFile: "cit_patents_undirected.csv", NodeSize: 6009555},
}

// labelFragments reproduces the label-type switch: label type id ->
// the filename fragment inserted before "<dimension>d.csv".
var labelFragments = map[int]string{
	0: "indep-",
	1: "corr-scale=0.5-",
	2: "anticorr-",
}

// Lookup resolves a dataset id to its catalogue entry.
func Lookup(id int) (Info, error) {
	info, ok := catalogue[id]
	if !ok {
		return Info{}, fmt.Errorf("dataset: id %d: %w", id, ErrUnknownDataset)
	}
	return info, nil
}

// LabelFile resolves a label-type id and dimension to the label file
// name, relative to the datasets directory, matching the original's
// string concatenation exactly.
func LabelFile(labelType, dimension int) (string, error) {
	fragment, ok := labelFragments[labelType]
	if !ok {
		return "", fmt.Errorf("dataset: label type %d: %w", labelType, ErrUnknownLabelType)
	}
	return fmt.Sprintf("%s%dd.csv", fragment, dimension), nil
}
