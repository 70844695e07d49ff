package tokens

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"

	"tokenwise/internal/history"
)

// fallbackEncoding is used when a model has no registered encoding.
// cl100k_base tokenizes closely enough for budget decisions across
// providers.
const fallbackEncoding = "cl100k_base"

// TiktokenService counts tokens with a tiktoken encoding resolved per
// model. Encodings are cached by the tiktoken library itself.
type TiktokenService struct{}

// NewTiktokenService constructs the tiktoken-backed counting service.
func NewTiktokenService() *TiktokenService {
	return &TiktokenService{}
}

// Count tokenizes every record's content and sums the counts, adding the
// same per-message overhead the local estimator uses so the two scales
// stay comparable.
func (s *TiktokenService) Count(messages []history.Record, model string) (int, error) {
	enc, err := encodingFor(model)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, msg := range messages {
		total += messageOverhead
		total += len(enc.Encode(msg.Content, nil, nil))
	}
	return total, nil
}

// encodingFor resolves the encoding for a model, falling back to
// cl100k_base for unknown models.
func encodingFor(model string) (*tiktoken.Tiktoken, error) {
	if model != "" {
		if enc, err := tiktoken.EncodingForModel(model); err == nil {
			return enc, nil
		}
	}
	enc, err := tiktoken.GetEncoding(fallbackEncoding)
	if err != nil {
		return nil, fmt.Errorf("tokens: get encoding: %w", err)
	}
	return enc, nil
}
