// Package game implements the core rules engine for Rock-Paper-Scissors-Plus,
// a three-round RPS variant where each side may play a single "bomb" move
// that beats everything except another bomb.
//
// The main type is Match, which owns the state of a single match and is the
// only mutator of it. Everything underneath it is plain data and pure
// functions: ResolveRound decides a round from two moves, State carries the
// scores, bomb flags and round counter, and Validate turns a raw user string
// into a structured verdict.
//
// # Basic Usage
//
// Create a match against a bot policy and drive it round by round:
//
//	m := game.NewMatch(policy)
//	v := m.Validate(input)
//	if !v.Valid {
//	    // report v.Reason, optionally m.WasteRound()
//	}
//	res, err := m.Play(game.MustParseMove(v.Move))
//	if res.State.GameOver {
//	    result := res.State.FinalResult()
//	}
//
// # Deterministic Testing
//
// All randomness lives in the bot policy, which is an interface. Tests
// inject a scripted policy or a seeded RNG to force exact bot moves:
//
//	m := game.NewMatch(bot.NewScripted(game.Scissors, game.Paper, game.Bomb))
//
// Validity of user input is data, not errors: Validate never fails, it
// reports. The only errors the package returns are contract breaches at the
// Match boundary, such as playing a round after the match has ended.
package game
