package action

import (
	"fmt"

	"github.com/cartolab/mapstrap/log"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitClone fetches the library source by cloning a git repository into Dest
// and checking out the requested revision. It is used instead of Download
// when the configured source URL ends in '.git'.
type GitClone struct {
	URL  string
	Ref  string
	Dest string
}

// Describe returns a short human-readable summary of the action.
func (a *GitClone) Describe() string {
	return fmt.Sprintf("clone '%s' at '%s'", a.URL, a.Ref)
}

// Run clones the repository and checks out the revision.
func (a *GitClone) Run() error {
	log.Log("Cloning '%s'.\n", a.URL)
	log.Spinner.Start()
	defer log.Spinner.Stop()

	repo, err := git.PlainClone(a.Dest, false, &git.CloneOptions{
		URL: a.URL,
	})
	if err != nil {
		return fmt.Errorf("failed to clone repository: %s", err)
	}

	// Convert the revision (which might be a hash, tag, branch, etc.) to a
	// cannonical commit hash before checking it out.
	hash, err := repo.ResolveRevision(plumbing.Revision(a.Ref))
	if err != nil {
		return fmt.Errorf("failed to resolve revision '%s': %s", a.Ref, err)
	}
	log.Debug("Revision '%s' was resolved to commit hash '%s'.\n", a.Ref, hash.String())

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get repo worktree: %s", err)
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash}); err != nil {
		return fmt.Errorf("failed to checkout revision '%s': %s", hash.String(), err)
	}
	return nil
}
