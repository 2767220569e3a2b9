// Package advice wraps the external generative-text service that produces
// budgeting advice from a ledger snapshot. Every failure path degrades to a
// fixed advisory string; callers never see an error.
package advice

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"focusfinance/internal/core"
)

// Generator is the remote text-generation port.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	// OnboardingMessage is returned for an empty ledger, without any remote call.
	OnboardingMessage = "Start adding transactions to get personalized financial insights!"

	// FallbackMessage is returned when the remote call fails.
	FallbackMessage = "Start tracking more transactions to get personalized AI financial insights!"

	// EncouragementMessage is returned when the remote call succeeds but
	// carries no text.
	EncouragementMessage = "Keep up the great work tracking your finances! You're on the right path."
)

// BuildPrompt renders the advisor prompt with one line per transaction in
// the form "date: ±amount (category - description)". The 100-word bound is a
// prompt instruction only; a longer response is passed through verbatim.
func BuildPrompt(ledger []core.Transaction) string {
	lines := make([]string, 0, len(ledger))
	for _, t := range ledger {
		lines = append(lines, fmt.Sprintf("%s: %s%s (%s - %s)",
			t.Date, t.Type.Sign(), formatAmount(t.Amount), t.Category, t.Description))
	}

	return fmt.Sprintf(`As a professional financial advisor, analyze the following transactions from the last month and provide a concise (max 100 words), encouraging, and actionable piece of advice.
Look for patterns in spending or ways to optimize.

Transactions:
%s

Format the response as a friendly paragraph.`, strings.Join(lines, "\n"))
}

// Fingerprint identifies a ledger snapshot for caching. Two snapshots with
// the same transactions in the same order share a fingerprint.
func Fingerprint(ledger []core.Transaction) string {
	h := fnv.New64a()
	for _, t := range ledger {
		h.Write([]byte(t.ID))
		var buf [8]byte
		bits := math.Float64bits(t.Amount)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf[:])
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
