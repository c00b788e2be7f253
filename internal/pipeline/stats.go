package pipeline

// Stats accumulates counters over one run for the end-of-run summary.
type Stats struct {
	Folders        int // folders whose gamelist was written
	FoldersSkipped int // folders dropped due to metadata or write errors
	Games          int // game entries written across all folders
	Covers         int // cover images converted
	Fanart         int // fanart images converted
	Marquees       int // marquee images converted
	ArtworkErrors  int // artwork files found but failed to convert
}
