package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendTradeEvent(ctx context.Context, data TradeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TradeEvent.Create().
		SetSequence(seqNum).
		SetSymbol(data.Symbol).
		SetQuantity(data.Quantity).
		SetPrice(data.Price).
		SetAccepted(data.Accepted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save trade event: %w", err)
	}
	return nil
}
