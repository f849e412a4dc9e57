package recommender

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultTopK es el tamaño del grupo del que se sortea en PolicySampledTopK.
const DefaultTopK = 5

var ErrUnknownPolicy = errors.New("recommender: unknown selection policy")

// Policy decide cómo se elige el resultado final entre los candidatos ordenados.
type Policy int

const (
	// PolicyDeterministic devuelve siempre el candidato con mayor score.
	PolicyDeterministic Policy = iota
	// PolicySampledTopK sortea de forma uniforme entre los K mejores.
	PolicySampledTopK
)

func (p Policy) String() string {
	switch p {
	case PolicyDeterministic:
		return "deterministic"
	case PolicySampledTopK:
		return "sampled"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deterministic", "determinista":
		return PolicyDeterministic, nil
	case "sampled", "sampled-top-k", "topk", "top-k":
		return PolicySampledTopK, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// RandSource es la fuente de aleatoriedad inyectable; *rand.Rand la satisface.
type RandSource interface {
	Intn(n int) int
}

// NewSeededRand devuelve una fuente reproducible. Con seed 0 usa el reloj.
func NewSeededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // no es criptográfico
}

// Selector ordena candidatos y elige uno según la política.
type Selector struct {
	policy Policy
	k      int

	rng   RandSource
	rngMu sync.Mutex
}

func NewSelector(policy Policy, k int, rng RandSource) *Selector {
	if k < 1 {
		k = DefaultTopK
	}
	if rng == nil {
		rng = NewSeededRand(0)
	}
	return &Selector{policy: policy, k: k, rng: rng}
}

func (s *Selector) Policy() Policy { return s.policy }

func (s *Selector) TopK() int { return s.k }

// SortCandidates ordena por score descendente sin alterar el orden relativo
// de los empates (orden del catálogo).
func SortCandidates(cands []ScoredCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
}

// Pick recibe candidatos ya ordenados y devuelve el elegido.
func (s *Selector) Pick(sorted []ScoredCandidate) (ScoredCandidate, bool) {
	if len(sorted) == 0 {
		return ScoredCandidate{}, false
	}
	if s.policy != PolicySampledTopK {
		return sorted[0], true
	}

	top := s.k
	if len(sorted) < top {
		top = len(sorted)
	}
	s.rngMu.Lock()
	idx := s.rng.Intn(top)
	s.rngMu.Unlock()
	return sorted[idx], true
}
