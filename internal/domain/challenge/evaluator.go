package challenge

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Evaluator is a two-state machine for a single challenge: Incomplete until
// its goal is met, then Complete forever. All three kinds share the struct;
// the Kind tag decides which fields are live.
type Evaluator struct {
	Kind     Kind
	complete bool

	// tap
	taps    int
	tapGoal int

	// math
	operandA     int
	operandB     int
	correctCount int
	required     int
	rng          *rand.Rand

	// copy
	target string
}

// SubmitResult reports the outcome of one input event.
type SubmitResult struct {
	Accepted bool   `json:"accepted"`
	Complete bool   `json:"complete"`
	Prompt   string `json:"prompt,omitempty"`
}

// NewEvaluator builds an evaluator for the given kind. The rng drives math
// question generation and the copy sentence pick; tests inject a fixed seed.
func NewEvaluator(kind Kind, tapGoal, mathRequired int, rng *rand.Rand) *Evaluator {
	e := &Evaluator{Kind: kind}
	switch kind {
	case KindTap:
		if tapGoal < 1 {
			tapGoal = 10
		}
		e.tapGoal = tapGoal
	case KindMath:
		if mathRequired < 1 {
			mathRequired = 3
		}
		e.required = mathRequired
		e.rng = rng
		e.nextQuestion()
	case KindCopy:
		e.target = copySentences[rng.Intn(len(copySentences))]
	}
	return e
}

// Complete reports whether the evaluator reached its terminal state.
func (e *Evaluator) Complete() bool {
	return e.complete
}

// Prompt returns what the client should show for the current state.
func (e *Evaluator) Prompt() string {
	switch e.Kind {
	case KindTap:
		return fmt.Sprintf("%d taps to go", e.tapGoal-e.taps)
	case KindMath:
		return fmt.Sprintf("%d + %d", e.operandA, e.operandB)
	case KindCopy:
		return e.target
	}
	return ""
}

// Submit feeds one input event into the state machine. For tap challenges
// the input is ignored, every call is one trigger. Events after completion
// are no-ops. A rejected submission never changes state: the same math
// question stays pending and retries are unlimited.
func (e *Evaluator) Submit(input string) SubmitResult {
	if e.complete {
		return SubmitResult{Accepted: true, Complete: true, Prompt: e.Prompt()}
	}

	switch e.Kind {
	case KindTap:
		e.taps++
		if e.taps >= e.tapGoal {
			e.complete = true
		}
		return SubmitResult{Accepted: true, Complete: e.complete, Prompt: e.Prompt()}

	case KindMath:
		answer, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || answer != e.operandA+e.operandB {
			return SubmitResult{Accepted: false, Complete: false, Prompt: e.Prompt()}
		}
		e.correctCount++
		if e.correctCount >= e.required {
			e.complete = true
		} else {
			e.nextQuestion()
		}
		return SubmitResult{Accepted: true, Complete: e.complete, Prompt: e.Prompt()}

	case KindCopy:
		if strings.TrimSpace(input) != e.target {
			return SubmitResult{Accepted: false, Complete: false, Prompt: e.Prompt()}
		}
		e.complete = true
		return SubmitResult{Accepted: true, Complete: true, Prompt: e.Prompt()}
	}

	return SubmitResult{}
}

// TapCount returns how many triggers have been counted so far.
func (e *Evaluator) TapCount() int {
	return e.taps
}

// CorrectCount returns how many math answers have been accepted so far.
func (e *Evaluator) CorrectCount() int {
	return e.correctCount
}

func (e *Evaluator) nextQuestion() {
	e.operandA = e.rng.Intn(10) + 1
	e.operandB = e.rng.Intn(10) + 1
}
