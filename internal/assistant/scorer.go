package assistant

import "context"

// Scorer evaluates a severity score in [0,100] for a symptom description.
// The production implementation is the scoring collaborator (Client.Score);
// PlaceholderScorer stands in when no scoring endpoint is configured. Both
// sit behind this interface so a real scoring model can be swapped in
// without touching the check-in flow.
type Scorer interface {
	Score(ctx context.Context, symptoms string) (int, error)
}

// PlaceholderScorer returns a fixed mid-scale score regardless of input.
// It is explicitly a stub, not a scoring algorithm: the value carries no
// clinical meaning and exists only so the check-in flow has a score to
// persist when the scoring collaborator is not configured.
type PlaceholderScorer struct{}

// PlaceholderScore is the fixed value emitted by PlaceholderScorer.
const PlaceholderScore = 50

// Score implements Scorer.
func (PlaceholderScorer) Score(context.Context, string) (int, error) {
	return PlaceholderScore, nil
}
