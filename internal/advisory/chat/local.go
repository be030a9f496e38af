package chat

import "strings"

// Canned responses used when the completion API is unavailable. Indexed by
// topic; selection below is keyword-routed.
var demoResponses = [5]string{
	"As a South African business owner, it's important to register with SARS and obtain your tax clearance certificate. This is essential for doing business with government entities and larger corporations.",
	"For VAT registration in South Africa, you must register if your taxable turnover exceeds R1 million in any consecutive 12-month period. The standard VAT rate is 15%.",
	"BBBEE compliance is crucial for South African businesses. Consider getting your BBBEE certificate to improve your chances of winning government tenders and contracts with large corporations.",
	"When invoicing in South Africa, ensure your invoices include your VAT number (if registered), the VAT amount clearly stated, and comply with SARS requirements for tax invoices.",
	"South African small businesses can benefit from various government support programs. Check out SEDA (Small Enterprise Development Agency) for free business development services.",
}

// Topic word lists checked in priority order; first match wins.
var topicKeywords = []struct {
	words    []string
	response int
}{
	{words: []string{"vat", "tax", "sars"}, response: 1},
	{words: []string{"bbbee", "bee", "empowerment"}, response: 2},
	{words: []string{"invoice", "billing", "payment"}, response: 3},
	{words: []string{"support", "help", "government", "seda"}, response: 4},
}

// cannedResponse selects the demo response matching the message topic.
func cannedResponse(message string) string {
	lower := strings.ToLower(message)
	for _, topic := range topicKeywords {
		for _, word := range topic.words {
			if strings.Contains(lower, word) {
				return demoResponses[topic.response]
			}
		}
	}
	return demoResponses[0]
}
