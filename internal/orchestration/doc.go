// Package orchestration runs a brand generation attempt end to end. The
// Orchestrator validates the mission, fans out identity and logo generation
// concurrently, joins both, and publishes the outcome through a Machine, the
// workflow state machine it exclusively writes to. It decouples business
// logic from presentation: callers observe the Machine and the progress
// Simulator instead of being called back by the orchestrator directly.
package orchestration
