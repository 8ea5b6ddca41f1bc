package game

// beats maps each standard move to the move it defeats
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// ResolveRound determines the winner of a round from two already-normalized
// moves. It is a pure function of its arguments:
//
//   - equal moves draw, including bomb against bomb
//   - a lone bomb wins unconditionally
//   - otherwise rock beats scissors, scissors beats paper, paper beats rock
//
// Every pair of moves resolves; there is no undefined combination.
func ResolveRound(userMove, botMove Move) Outcome {
	if userMove == botMove {
		return OutcomeDraw
	}
	if userMove == Bomb {
		return OutcomeUser
	}
	if botMove == Bomb {
		return OutcomeBot
	}
	if beats[userMove] == botMove {
		return OutcomeUser
	}
	return OutcomeBot
}
