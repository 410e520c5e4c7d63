// Package action contains the external work a build step can perform:
// downloading and extracting archives, cloning repositories, and driving
// external toolchains.
package action

// Action is a single unit of external work performed by a build step.
type Action interface {
	// Describe returns a short human-readable summary of the action.
	Describe() string
	// Run performs the action, blocking until it completes or fails.
	Run() error
}
