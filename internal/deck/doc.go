// Package deck builds DAKOTA input decks.
//
// A Deck aggregates typed variables, a method, responses, an interface and
// an environment block, and renders them as the sectioned keyword text the
// DAKOTA executable consumes. Validation happens at construction time so a
// Deck that renders is a Deck DAKOTA will accept.
package deck
