package entity

type PullRequest struct {
	SHA    string
	Dir    string
	Ignore []string
	// Progress is called once per tree entry processed, with the number of
	// entries in the tree.
	Progress func(path string, total int)
}

type PullResult struct {
	Written []string
	Ignored []string
	Failed  []string
}
