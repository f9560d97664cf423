package morfem

// Stage identifies one matcher invocation within the pipeline.
type Stage string

const (
	StagePrefix     Stage = "prefix"
	StageNounEnding Stage = "noun_ending"
	StagePlural     Stage = "plural"
	StageNounSuffix Stage = "noun_suffix"
	StageVerbSuffix Stage = "verb_suffix"
)

// Tracer receives search events from the decomposition pipeline.
// Implementations must not assume any call ordering beyond a stage being
// started before its matches are reported, and must not block: tracing is
// diagnostic only and never changes the returned decompositions.
type Tracer interface {
	StageStarted(stage Stage, word string)
	CandidateMatched(stage Stage, morpheme Morpheme, remainder string)
	BranchPruned(stage Stage, remainder string)
}

type nopTracer struct{}

func (nopTracer) StageStarted(Stage, string)               {}
func (nopTracer) CandidateMatched(Stage, Morpheme, string) {}
func (nopTracer) BranchPruned(Stage, string)               {}
