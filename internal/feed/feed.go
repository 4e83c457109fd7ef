// Package feed generates fake chat traffic. It stands in for a real
// chat backend: a goroutine emits messages from a fixed cast of users
// across a few rooms at random intervals, so the UI always has live
// data to render.
package feed

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/carrier-pigeon/pigeon/internal/message"
)

var (
	rooms = []message.Room{"general", "random", "memes"}
	users = []message.User{"alice", "bob", "charlie", "dana"}

	words = []string{
		"lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
		"adipiscing", "elit", "sed", "do", "eiusmod", "tempor",
		"incididunt", "ut", "labore", "et", "dolore", "magna", "aliqua",
	}
)

// MaxInterval is the longest pause between two generated messages.
const MaxInterval = 5 * time.Second

// Feed emits fake messages on a channel it owns.
type Feed struct {
	out chan message.Message
	rng *rand.Rand
}

// New creates a feed. The seed fixes the traffic pattern; pass a
// time-derived seed for varied runs or a constant for reproducible
// ones.
func New(seed int64) *Feed {
	return &Feed{
		out: make(chan message.Message),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Messages returns the channel the feed delivers on. It is closed when
// Run returns.
func (f *Feed) Messages() <-chan message.Message {
	return f.out
}

// Run generates messages until the context is canceled. It blocks and
// is meant to be run on its own goroutine.
func (f *Feed) Run(ctx context.Context) {
	defer close(f.out)
	timer := time.NewTimer(f.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		select {
		case f.out <- f.generate():
		case <-ctx.Done():
			return
		}
		timer.Reset(f.interval())
	}
}

func (f *Feed) interval() time.Duration {
	return time.Duration(f.rng.Int63n(int64(MaxInterval)))
}

func (f *Feed) generate() message.Message {
	n := 3 + f.rng.Intn(10)
	body := make([]string, n)
	for i := range body {
		body[i] = words[f.rng.Intn(len(words))]
	}
	return message.New(
		rooms[f.rng.Intn(len(rooms))],
		users[f.rng.Intn(len(users))],
		strings.Join(body, " "),
	)
}
