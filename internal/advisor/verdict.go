package advisor

import (
	"strings"

	"StockDesk/internal/model"
)

const (
	defaultReason   = "AI analysis complete."
	malformedReason = "Unable to determine clear action; defaulting to HOLD."
	failurePrefix   = "Error during analysis: "
	maxErrorRunes   = 50
)

// Verdict is the classified outcome of one model call: Success, Malformed or Failure.
type Verdict interface {
	isVerdict()
}

// Success is a reply whose first line is a known action.
type Success struct {
	Action model.Action
	Reason string
}

// Malformed is a reply that did not start with a known action.
type Malformed struct {
	Raw string
}

// Failure is a call that errored or returned nothing usable.
type Failure struct {
	Message string
}

func (Success) isVerdict()   {}
func (Malformed) isVerdict() {}
func (Failure) isVerdict()   {}

// Classify turns a raw model reply, or the error that replaced it, into a Verdict.
func Classify(reply string, err error) Verdict {
	if err != nil {
		return Failure{Message: err.Error()}
	}
	text := strings.TrimSpace(reply)
	if text == "" {
		return Failure{Message: "empty response from model"}
	}

	lines := strings.Split(text, "\n")
	action, ok := model.ParseAction(strings.ToUpper(strings.TrimSpace(lines[0])))
	if !ok {
		return Malformed{Raw: text}
	}
	reason := defaultReason
	if len(lines) > 1 {
		reason = strings.TrimSpace(lines[1])
	}
	return Success{Action: action, Reason: reason}
}

// Resolve maps a Verdict onto the response for ticker. Every verdict yields a
// decision; anything but Success becomes HOLD.
func Resolve(ticker string, v Verdict) *model.DecisionResponse {
	resp := &model.DecisionResponse{Ticker: ticker, Action: model.ActionHold}
	switch v := v.(type) {
	case Success:
		resp.Action = v.Action
		resp.Reason = v.Reason
	case Malformed:
		resp.Reason = malformedReason
	case Failure:
		resp.Reason = failurePrefix + truncate(v.Message, maxErrorRunes)
	}
	return resp
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
