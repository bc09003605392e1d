// Package ccf expands common-cause failure groups into ordinary
// basic events and gates before preprocessing ever sees them, per §6:
// beta-factor, multiple Greek letter (MGL), alpha-factor and
// phi-factor models, all expressed through the explicit method
// (Mosleh & Rasmuson): one independent basic event per member plus one
// shared basic event per distinct combination of members that can fail
// together, each member's original id rewritten into an OR of its
// independent event and every combination event it participates in.
//
// Expansion is deterministic given a CCFGroup — there is no
// construction-time configuration to thread through functional
// options the way package builder's topology constructors do, so
// Expand takes the model directly rather than a builder-style option
// list.
package ccf
