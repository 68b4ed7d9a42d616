package pomodoro

import "math"

// Quote is one entry of the collection as shown to the user.
type Quote struct {
	Text     string
	Unlocked bool
}

// Progress maps completed sessions to unlocked quotes, one for one, in list
// order. Only the session count is durable; the unlocked prefix is derived
// from it.
type Progress struct {
	quotes   []string
	sessions int
	unlocked int
}

func NewProgress(quotes []string, sessions int) *Progress {
	if sessions < 0 {
		sessions = 0
	}
	return &Progress{
		quotes:   quotes,
		sessions: sessions,
		unlocked: min(sessions, len(quotes)),
	}
}

func (p *Progress) Sessions() int { return p.sessions }
func (p *Progress) Unlocked() int { return p.unlocked }
func (p *Progress) Total() int    { return len(p.quotes) }

// Advance counts one more session and unlocks the next quote if any is left.
// It returns the index of the newly unlocked quote, or ok=false when the
// collection is already complete.
func (p *Progress) Advance() (index int, ok bool) {
	p.sessions++
	if p.unlocked >= len(p.quotes) {
		return -1, false
	}
	index = p.unlocked
	p.unlocked++
	return index, true
}

// Latest returns the most recently unlocked quote.
func (p *Progress) Latest() (string, bool) {
	if p.unlocked == 0 {
		return "", false
	}
	return p.quotes[p.unlocked-1], true
}

// Quotes returns every quote with its unlock flag.
func (p *Progress) Quotes() []Quote {
	out := make([]Quote, len(p.quotes))
	for i, q := range p.quotes {
		out[i] = Quote{Text: q, Unlocked: i < p.unlocked}
	}
	return out
}

// Percent is the rounded share of the collection unlocked so far.
func (p *Progress) Percent() int {
	return int(math.Round(float64(p.unlocked) * 100 / float64(max(1, len(p.quotes)))))
}
