package consolidate

import "fmt"

const (
	branchStateNotPresentStringConstant       = "not-present"
	branchStatePresentStringConstant          = "present"
	branchStateOrphanCreatedStringConstant    = "orphan-created"
	branchStateCleanedStringConstant          = "cleaned"
	branchStateHistoryRewrittenStringConstant = "history-rewritten"
	branchStateMergedStringConstant           = "merged"
	invalidTransitionTemplateConstant         = "branch %q cannot move from state %q to %q"
)

// BranchState identifies how far a (source, branch) pair has progressed.
type BranchState string

// Branch processing states.
const (
	BranchStateNotPresent       BranchState = BranchState(branchStateNotPresentStringConstant)
	BranchStatePresent          BranchState = BranchState(branchStatePresentStringConstant)
	BranchStateOrphanCreated    BranchState = BranchState(branchStateOrphanCreatedStringConstant)
	BranchStateCleaned          BranchState = BranchState(branchStateCleanedStringConstant)
	BranchStateHistoryRewritten BranchState = BranchState(branchStateHistoryRewrittenStringConstant)
	BranchStateMerged           BranchState = BranchState(branchStateMergedStringConstant)
)

// InvalidTransitionError reports a branch operation attempted out of order.
type InvalidTransitionError struct {
	BranchName string
	FromState  BranchState
	ToState    BranchState
}

// Error describes the rejected transition.
func (transitionError InvalidTransitionError) Error() string {
	return fmt.Sprintf(invalidTransitionTemplateConstant, transitionError.BranchName, transitionError.FromState, transitionError.ToState)
}

// WorkingContext tracks the mutable working tree state for one target branch,
// enforcing that rewrite and merge operations happen in a valid order.
type WorkingContext struct {
	branchName   string
	currentState BranchState
}

// NewWorkingContext starts tracking branchName, which either already exists in
// the target or still needs an orphan bootstrap.
func NewWorkingContext(branchName string, branchExists bool) *WorkingContext {
	initialState := BranchStateNotPresent
	if branchExists {
		initialState = BranchStatePresent
	}
	return &WorkingContext{branchName: branchName, currentState: initialState}
}

// State returns the current branch processing state.
func (workingContext *WorkingContext) State() BranchState {
	return workingContext.currentState
}

// MarkOrphanCreated records the orphan bootstrap of a previously absent branch.
func (workingContext *WorkingContext) MarkOrphanCreated() error {
	return workingContext.transition(BranchStateNotPresent, BranchStateOrphanCreated)
}

// MarkCleaned records that an existing branch was checked out and scrubbed.
func (workingContext *WorkingContext) MarkCleaned() error {
	return workingContext.transition(BranchStatePresent, BranchStateCleaned)
}

// MarkHistoryRewritten records completion of the scratch-branch history rewrite.
func (workingContext *WorkingContext) MarkHistoryRewritten() error {
	if workingContext.currentState == BranchStateOrphanCreated {
		return workingContext.transition(BranchStateOrphanCreated, BranchStateHistoryRewritten)
	}
	return workingContext.transition(BranchStateCleaned, BranchStateHistoryRewritten)
}

// MarkMerged records the terminal merge of rewritten history into the branch.
func (workingContext *WorkingContext) MarkMerged() error {
	return workingContext.transition(BranchStateHistoryRewritten, BranchStateMerged)
}

func (workingContext *WorkingContext) transition(requiredState BranchState, nextState BranchState) error {
	if workingContext.currentState != requiredState {
		return InvalidTransitionError{BranchName: workingContext.branchName, FromState: workingContext.currentState, ToState: nextState}
	}
	workingContext.currentState = nextState
	return nil
}
