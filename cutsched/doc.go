// Package cutsched resolves when each cut-generator family runs during the
// tree search.
//
// Every family has a strategy (NotSet, None, Root, Auto, Periodic) and a
// frequency. Resolve applies, once per family:
//
//   - a set strategy is kept as given;
//   - NotSet with a NotSet global default takes the family fallback;
//   - NotSet with a Periodic global default becomes Periodic at the global
//     frequency;
//   - NotSet with any other global default inherits it.
//
// Families resolved to None are not registered. The global policy is then
// recomputed from the registered families: Periodic with frequency 1 if any
// is Periodic, else Root if any is Root, else None.
//
// A Schedule is read-only after Resolve and Bind; any number of workers may
// call Due concurrently.
package cutsched
