package chat

import (
	"math/rand"
	"strings"
	"sync"
)

// Canned assistant replies. Keyword rules are checked in order against
// the lowercased user message; the first match wins. Messages that
// match no rule get a random pick from the fallback pool plus the
// follow-up prompt.

const (
	recipeReply = "I'd love to help you find the perfect recipe! While I'm still learning, " +
		"I can suggest checking out our Meals section where you'll find various recipes " +
		"organized by category. Is there a specific type of meal you're looking for?"

	ingredientReply = "For ingredient-related questions, I recommend checking out our " +
		"Ingredients section. You can manage your ingredients there and I'll help you find " +
		"recipes that match what you have available!"

	planningReply = "Meal planning is a great way to stay organized! I can help you plan " +
		"your meals for the week. You might want to check out our Calendar feature to " +
		"schedule your cooking sessions. What's your main goal with meal planning?"

	followUpPrompt = " What specific aspect would you like to know more about?"
)

var fallbackPool = []string{
	"That's a great question! Let me help you with that.",
	"I'd be happy to provide some suggestions based on your needs.",
	"Here are some ideas that might work well for you.",
	"Let me share some tips that could be useful.",
	"That sounds like an interesting challenge! Here's what I recommend.",
}

// keywordRule maps message substrings to a canned reply
type keywordRule struct {
	keywords []string
	reply    string
}

var rules = []keywordRule{
	{keywords: []string{"recipe"}, reply: recipeReply},
	{keywords: []string{"ingredient"}, reply: ingredientReply},
	{keywords: []string{"meal prep", "planning"}, reply: planningReply},
}

// Responder generates scripted assistant replies. Keyword-matched
// replies are deterministic; only the fallback path draws from the
// seeded random source.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder creates a responder whose fallback picks are driven by
// the given seed
func NewResponder(seed int64) *Responder {
	return &Responder{rng: rand.New(rand.NewSource(seed))}
}

// Reply produces the assistant response for a user message
func (r *Responder) Reply(userMessage string) string {
	lower := strings.ToLower(userMessage)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}

	r.mu.Lock()
	pick := fallbackPool[r.rng.Intn(len(fallbackPool))]
	r.mu.Unlock()
	return pick + followUpPrompt
}
