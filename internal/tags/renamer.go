package tags

import (
	"context"
	"errors"
	"fmt"

	"github.com/temirov/create-mono/internal/gitrepo"
)

const (
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	tagListFailureTemplateConstant          = "failed to list tags for remote %q: %w"
	tagProbeFailureTemplateConstant         = "failed to probe tag %q: %w"
	tagResolveFailureTemplateConstant       = "failed to resolve tag %q: %w"
	tagCreateFailureTemplateConstant        = "failed to create tag %q: %w"
	tagDeleteFailureTemplateConstant        = "failed to delete tag %q: %w"
	tagCollisionTemplateConstant            = "tag %q already exists at commit %s; renaming %q would overwrite it"
	tagReferencePrefixConstant              = "refs/tags/"
)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// TagCollisionError reports a renamed tag name already claimed by a different commit.
type TagCollisionError struct {
	RenamedTagName  string
	OriginalTagName string
	ExistingCommit  string
}

// Error describes the collision.
func (collisionError TagCollisionError) Error() string {
	return fmt.Sprintf(tagCollisionTemplateConstant, collisionError.RenamedTagName, collisionError.ExistingCommit, collisionError.OriginalTagName)
}

// TagOperations is the subset of repository management used for tag renames.
type TagOperations interface {
	ListRemoteTags(executionContext context.Context, repositoryPath string, remoteName string) ([]gitrepo.RemoteTagReference, error)
	TagExists(executionContext context.Context, repositoryPath string, tagName string) (bool, error)
	ResolveCommit(executionContext context.Context, repositoryPath string, reference string) (string, error)
	CreateTag(executionContext context.Context, repositoryPath string, tagName string, targetReference string) error
	DeleteTag(executionContext context.Context, repositoryPath string, tagName string) error
}

// Dependencies enumerates external collaborators required by the renamer.
type Dependencies struct {
	RepositoryManager TagOperations
}

// RenameOutcome records one completed tag rename.
type RenameOutcome struct {
	OriginalName string
	RenamedName  string
}

// Renamer namespaces release-candidate tags fetched from a source remote.
type Renamer struct {
	repositoryManager TagOperations
}

// NewRenamer constructs a Renamer from the provided dependencies.
func NewRenamer(dependencies Dependencies) (*Renamer, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	return &Renamer{repositoryManager: dependencies.RepositoryManager}, nil
}

// NamespaceSourceTags renames every classifier-bearing tag advertised by
// remoteName, pointing each renamed tag at the original tag's commit before
// deleting the original name.
//
// Resumed runs tolerate renames that already happened: a renamed tag pointing
// at the expected commit is treated as done, while one pointing elsewhere
// surfaces as a TagCollisionError.
func (renamer *Renamer) NamespaceSourceTags(executionContext context.Context, repositoryPath string, remoteName string) ([]RenameOutcome, error) {
	advertisedTags, listError := renamer.repositoryManager.ListRemoteTags(executionContext, repositoryPath, remoteName)
	if listError != nil {
		return nil, fmt.Errorf(tagListFailureTemplateConstant, remoteName, listError)
	}

	renameOutcomes := []RenameOutcome{}
	for _, advertisedTag := range advertisedTags {
		parsedTag := ParseTagName(advertisedTag.Name)
		if parsedTag.Class == TagClassUnmatched {
			continue
		}

		renamedTagName := parsedTag.NamespacedName(remoteName)
		renameOutcome, renamed, renameError := renamer.renameSingleTag(executionContext, repositoryPath, advertisedTag.Name, renamedTagName)
		if renameError != nil {
			return nil, renameError
		}
		if renamed {
			renameOutcomes = append(renameOutcomes, renameOutcome)
		}
	}
	return renameOutcomes, nil
}

func (renamer *Renamer) renameSingleTag(executionContext context.Context, repositoryPath string, originalTagName string, renamedTagName string) (RenameOutcome, bool, error) {
	originalExists, originalProbeError := renamer.repositoryManager.TagExists(executionContext, repositoryPath, originalTagName)
	if originalProbeError != nil {
		return RenameOutcome{}, false, fmt.Errorf(tagProbeFailureTemplateConstant, originalTagName, originalProbeError)
	}

	renamedExists, renamedProbeError := renamer.repositoryManager.TagExists(executionContext, repositoryPath, renamedTagName)
	if renamedProbeError != nil {
		return RenameOutcome{}, false, fmt.Errorf(tagProbeFailureTemplateConstant, renamedTagName, renamedProbeError)
	}

	if renamedExists {
		if !originalExists {
			// A prior run already completed this rename.
			return RenameOutcome{}, false, nil
		}

		originalCommit, resolveError := renamer.repositoryManager.ResolveCommit(executionContext, repositoryPath, tagReferencePrefixConstant+originalTagName)
		if resolveError != nil {
			return RenameOutcome{}, false, fmt.Errorf(tagResolveFailureTemplateConstant, originalTagName, resolveError)
		}
		renamedCommit, resolveRenamedError := renamer.repositoryManager.ResolveCommit(executionContext, repositoryPath, tagReferencePrefixConstant+renamedTagName)
		if resolveRenamedError != nil {
			return RenameOutcome{}, false, fmt.Errorf(tagResolveFailureTemplateConstant, renamedTagName, resolveRenamedError)
		}
		if originalCommit != renamedCommit {
			return RenameOutcome{}, false, TagCollisionError{RenamedTagName: renamedTagName, OriginalTagName: originalTagName, ExistingCommit: renamedCommit}
		}

		if deleteError := renamer.repositoryManager.DeleteTag(executionContext, repositoryPath, originalTagName); deleteError != nil {
			return RenameOutcome{}, false, fmt.Errorf(tagDeleteFailureTemplateConstant, originalTagName, deleteError)
		}
		return RenameOutcome{OriginalName: originalTagName, RenamedName: renamedTagName}, true, nil
	}

	if !originalExists {
		return RenameOutcome{}, false, nil
	}

	originalCommit, resolveError := renamer.repositoryManager.ResolveCommit(executionContext, repositoryPath, tagReferencePrefixConstant+originalTagName)
	if resolveError != nil {
		return RenameOutcome{}, false, fmt.Errorf(tagResolveFailureTemplateConstant, originalTagName, resolveError)
	}
	if createError := renamer.repositoryManager.CreateTag(executionContext, repositoryPath, renamedTagName, originalCommit); createError != nil {
		return RenameOutcome{}, false, fmt.Errorf(tagCreateFailureTemplateConstant, renamedTagName, createError)
	}
	if deleteError := renamer.repositoryManager.DeleteTag(executionContext, repositoryPath, originalTagName); deleteError != nil {
		return RenameOutcome{}, false, fmt.Errorf(tagDeleteFailureTemplateConstant, originalTagName, deleteError)
	}
	return RenameOutcome{OriginalName: originalTagName, RenamedName: renamedTagName}, true, nil
}
