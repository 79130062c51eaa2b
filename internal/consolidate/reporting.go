package consolidate

import (
	"fmt"
	"io"
	"os"

	"github.com/temirov/create-mono/internal/utils"
)

const (
	mergingSourceTemplateConstant  = "Merging in %s..\n"
	tagRenameTemplateConstant      = "%s --> %s\n"
	branchPrunedTemplateConstant   = "Pruned fully-merged branch %s on remote %s\n"
	publishedTargetMessageConstant = "Pushed all branches and tags to origin\n"
)

// Reporter surfaces consolidation progress to the operator.
type Reporter interface {
	MergingSource(sourceName string)
	TagRenamed(originalName string, renamedName string)
	BranchPruned(remoteName string, branchName string)
	TargetPublished()
}

type writerReporter struct {
	writer io.Writer
}

// NewWriterReporter constructs a Reporter emitting to the provided writer,
// flushing after each line so progress is visible during long operations.
func NewWriterReporter(writer io.Writer) Reporter {
	if writer == nil || writer == io.Discard {
		writer = os.Stdout
	}
	return writerReporter{writer: utils.NewFlushingWriter(writer)}
}

func (reporter writerReporter) MergingSource(sourceName string) {
	fmt.Fprintf(reporter.writer, mergingSourceTemplateConstant, sourceName)
}

func (reporter writerReporter) TagRenamed(originalName string, renamedName string) {
	fmt.Fprintf(reporter.writer, tagRenameTemplateConstant, originalName, renamedName)
}

func (reporter writerReporter) BranchPruned(remoteName string, branchName string) {
	fmt.Fprintf(reporter.writer, branchPrunedTemplateConstant, branchName, remoteName)
}

func (reporter writerReporter) TargetPublished() {
	fmt.Fprint(reporter.writer, publishedTargetMessageConstant)
}
