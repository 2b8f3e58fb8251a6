package model

// Action is the trading action returned by the decision service.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// ParseAction reports whether s is exactly one of the known actions.
func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionBuy, ActionSell, ActionHold:
		return a, true
	default:
		return ActionHold, false
	}
}

// DecisionResponse is the payload of the decision endpoint.
type DecisionResponse struct {
	Ticker string `json:"ticker"`
	Action Action `json:"action"`
	Reason string `json:"reason"`
}

// NotAvailable is reported for info fields the provider left out.
const NotAvailable = "N/A"

// InfoResponse is the payload of the info endpoint. Each field holds either a
// value or NotAvailable.
type InfoResponse struct {
	Ticker        string `json:"ticker"`
	Name          any    `json:"name"`
	Price         any    `json:"price"`
	Change        any    `json:"change"`
	ChangePercent any    `json:"changePercent"`
}

// NewInfoResponse maps a provider quote onto the info payload.
func NewInfoResponse(ticker string, q *Quote) *InfoResponse {
	info := &InfoResponse{
		Ticker:        ticker,
		Name:          NotAvailable,
		Price:         NotAvailable,
		Change:        NotAvailable,
		ChangePercent: NotAvailable,
	}
	if q == nil {
		return info
	}
	if q.LongName != "" {
		info.Name = q.LongName
	}
	if q.Price != nil {
		info.Price = *q.Price
	}
	if change, pct, ok := q.Change(); ok {
		info.Change = change
		info.ChangePercent = pct
	}
	return info
}
