package synth

import "context"

// Synthesizer converts one structured prompt into narrative prose. The
// response is free text: the header grammar the prompt asks for is an
// assumption, not a guarantee, and the parser downstream copes either way.
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string) (string, error)
	Name() string
}
