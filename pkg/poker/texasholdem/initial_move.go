package texasholdem

import (
	"peerholdem/pkg/deck"
	"peerholdem/pkg/poker/action"
	"peerholdem/pkg/poker/operation"
	"peerholdem/pkg/poker/potmanager"
)

// InitialMove returns the operations that deal a new hand and post the blinds
func (l *Logic) InitialMove(playerIDs []int64, startingChips map[int64]int) (operation.List, error) {
	n := len(playerIDs)
	if n < MinPlayers || n > MaxPlayers {
		return nil, newRuleViolation("a hand needs %d to %d players, got %d", MinPlayers, MaxPlayers, n)
	}

	seen := make(map[int64]bool, n)
	chips := make([]int, n)
	for i, id := range playerIDs {
		if seen[id] {
			return nil, newRuleViolation("player %d is seated twice", id)
		}

		seen[id] = true

		stack, ok := startingChips[id]
		if !ok {
			return nil, newRuleViolation("player %d has not bought in", id)
		}

		chips[i] = stack
	}

	sb, bb, utg := blindSeats(n)
	if chips[sb] < l.options.SmallBlind {
		return nil, newRuleViolation("player %d cannot post the small blind of %d", playerIDs[sb], l.options.SmallBlind)
	}

	if chips[bb] < l.options.BigBlind {
		return nil, newRuleViolation("player %d cannot post the big blind of %d", playerIDs[bb], l.options.BigBlind)
	}

	bets := make([]int, n)
	bets[sb] = l.options.SmallBlind
	bets[bb] = l.options.BigBlind
	chips[sb] -= l.options.SmallBlind
	chips[bb] -= l.options.BigBlind

	pots := potmanager.Pots{potmanager.NewPot(nil, n)}
	pots = pots.Bet(sb, l.options.SmallBlind, chips[sb] == 0, n)
	pots = pots.Raise(bb, l.options.BigBlind-l.options.SmallBlind, chips[bb] == 0, n)
	pots.CheckBets(bets)

	playersInHand := make([]Seat, n)
	holeCards := make([][]int, n)
	for i := 0; i < n; i++ {
		playersInHand[i] = Seat(i)
		holeCards[i] = []int{2 * i, 2*i + 1}
	}

	board := make([]int, 5)
	for i := range board {
		board[i] = 2*n + i
	}

	ops := operation.List{
		operation.SetTurn{PlayerID: playerIDs[utg]},
		operation.Set{Key: operation.PreviousMove, Value: string(action.Raise)},
		operation.Set{Key: operation.PreviousMoveAllIn, Value: chips[bb] == 0},
		operation.Set{Key: operation.NumberOfPlayers, Value: n},
		operation.Set{Key: operation.WhoseMove, Value: utg},
		operation.Set{Key: operation.CurrentBetter, Value: bb},
		operation.Set{Key: operation.CurrentRound, Value: RoundPreFlop.String()},
	}

	for slot, card := range deck.New().Cards {
		ops = append(ops, operation.Set{Key: deck.SlotKey(slot), Value: deck.CardToString(card)})
	}

	ops = append(ops,
		operation.Set{Key: operation.PlayersInHand, Value: playersInHand},
		operation.Set{Key: operation.HoleCards, Value: holeCards},
		operation.Set{Key: operation.Board, Value: board},
		operation.Set{Key: operation.PlayerBets, Value: bets},
		operation.Set{Key: operation.PlayerChips, Value: chips},
		operation.Set{Key: operation.Pots, Value: pots},
		operation.Shuffle{Keys: deck.SlotKeys(0, deck.Size-1)},
	)

	for i, id := range playerIDs {
		for _, slot := range holeCards[i] {
			ops = append(ops, operation.SetVisibility{Key: deck.SlotKey(slot), VisibleTo: []int64{id}})
		}
	}

	for slot := 2 * n; slot < deck.Size; slot++ {
		ops = append(ops, operation.VisibleToNone(deck.SlotKey(slot)))
	}

	l.logger.WithField("players", n).Debug("dealing a new hand")

	return ops, nil
}

// BuyIn returns the operations that move amount from the player's account onto the table
func (l *Logic) BuyIn(playerID int64, amount int) (operation.List, error) {
	if amount <= 0 {
		return nil, newRuleViolation("buy-in must be > 0")
	}

	return operation.List{
		operation.AttemptChangeTokens{
			PlayerIDToTokens:    map[int64]int{playerID: -amount},
			PlayerIDToPotTokens: map[int64]int{playerID: amount},
		},
	}, nil
}
