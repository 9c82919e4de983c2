// Package lifecycle coordinates registered distributions: it merges live
// host registry state with the static catalog, owns the consumer-facing
// handle list, dispatches lifecycle commands, and polls the host to make up
// for its lack of state-change notifications. It is structured into small
// files by concern:
//
//   - manager.go: core Manager type, registry lookups, status, Close.
//   - config.go: Config and package defaults; NewWithConfig applies defaults.
//   - handle.go: Handle, the subscribed wrapper around one distribution.
//   - refresh.go: RefreshRegistered, the merge algorithm, availability.
//   - ops.go: command pass-throughs (Install/Launch/Terminate/Unregister).
//   - poller.go: Poller and Subscription, the running-state fan-out.
//   - events.go: Event and EventPublisher; eventpub_memory.go is the
//     in-memory publisher used by tests.
//   - errors.go: error types and helpers (IsDistributionNotFound).
//   - metrics.go: prometheus collectors for refreshes, ticks and commands.
//
// External packages should treat this package as the orchestration layer and
// use public methods only. Internal state is subject to change.
package lifecycle
