package google

import (
	"errors"
	"fmt"

	ai "github.com/spetersoncode/sentibot"
	"google.golang.org/genai"
)

// BlockedError is returned when Gemini refuses a prompt on safety grounds.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("gemini blocked the prompt: %s", e.Reason)
}

// wrapError wraps a Google GenAI error with sentibot error categorization.
// genai.APIError does not expose response headers, so Retry-After is unavailable.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	return ai.NewError(ai.ProviderGoogle, apiErr.Code, 0, err)
}
