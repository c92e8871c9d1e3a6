// Package streaming implements live order-status delivery.
//
// The package owns three cooperating pieces:
//
//   - Registry: the mapping from an order identifier to the set of
//     subscribers currently watching that order. Pure bookkeeping,
//     safe for concurrent use from unrelated request contexts.
//   - Dispatcher: fans one event out to every subscriber of an order.
//     Delivery is best-effort per subscriber; a broken or slow sink is
//     dropped without affecting the others.
//   - Simulator: one background run per order that repeatedly waits a
//     delay, re-reads the order from the store, advances it by exactly
//     one lifecycle step, and broadcasts the transition. The run ends
//     when the order reaches its terminal status or the store fails.
//
// Both the registry and the simulator's run table are explicitly
// constructed objects with process lifetime. Nothing here is durable:
// subscriptions do not survive a restart and events are not replayed.
package streaming
