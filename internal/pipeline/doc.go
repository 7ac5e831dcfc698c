// Package pipeline runs the ordered composition of formatting and lint
// stages over the documentation tree. Every stage runs even after a failure
// so one invocation reports every category of problem; the run's exit status
// is the OR of the mandatory stages' failures. Formatting always runs before
// structural lint, because formatting resolves whitespace issues that would
// otherwise register as lint failures.
package pipeline
