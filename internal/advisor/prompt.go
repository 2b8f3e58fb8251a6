package advisor

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are a trading advisor using reinforcement learning to analyze stock data.

Ticker: %s
Company: %s
Current Price: $%.2f
Recent 5-day closing prices: %s

Based on this data, provide a trading decision. Respond with ONLY one word: BUY, SELL, or HOLD.
Then on a new line, provide a brief one-sentence reason (max 15 words).

Format:
ACTION
Reason here.`

// BuildPrompt renders the decision prompt. Closes are listed oldest first.
func BuildPrompt(ticker, company string, price float64, closes []float64) string {
	return fmt.Sprintf(promptTemplate, ticker, company, price, priceList(closes))
}

// priceList renders closes as ['$1.00', '$2.50'].
func priceList(closes []float64) string {
	quoted := make([]string, len(closes))
	for i, c := range closes {
		quoted[i] = fmt.Sprintf("'$%.2f'", c)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
