package ui

import (
	"os"

	"github.com/cheggaaa/pb/v3"
)

const progressTemplate = `{{ string . "prefix" }} {{ counters . }} {{ bar . "[" "=" ">" " " "]" }} {{ percent . }}`

type Progress struct {
	bar *pb.ProgressBar
}

// StartProgress draws a progress bar on stderr for total items.
func StartProgress(prefix string, total int) *Progress {
	bar := pb.ProgressBarTemplate(progressTemplate).New(total)
	bar.SetWriter(os.Stderr)
	bar.Set("prefix", prefix)
	bar.Start()
	return &Progress{bar: bar}
}

func (p *Progress) Increment() {
	p.bar.Increment()
}

func (p *Progress) Finish() {
	p.bar.Finish()
}
