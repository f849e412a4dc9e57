package commands

import (
	"fmt"
	"io"

	"gotrip/pkg/recommender"
	"gotrip/pkg/styles"

	"github.com/goccy/go-json"
)

type recommendOutput struct {
	Policy  string                        `json:"policy"`
	Name    string                        `json:"name"`
	Score   float64                       `json:"score"`
	Ranking []recommender.ScoredCandidate `json:"ranking,omitempty"`
}

// Recommend imprime el destino elegido y, con -top, el ranking.
func Recommend(args []string, out io.Writer) error {
	fs := newFlagSet("recommend")
	fs.SetOutput(out)
	var pf profileFlags
	pf.register(fs)
	policyName := fs.String("policy", recommender.PolicyDeterministic.String(), "deterministic o sampled")
	top := fs.Int("top", 0, "muestra además los N mejores candidatos")
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := pf.profile()
	if err != nil {
		return err
	}
	policy, err := recommender.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	opts := []recommender.Option{recommender.WithPolicy(policy)}
	if pf.seed != 0 {
		opts = append(opts, recommender.WithSeed(pf.seed))
	}
	engine := recommender.New(recommender.DefaultCatalog(), opts...)

	rec, err := engine.Recommend(p)
	if err != nil {
		return err
	}
	res := recommendOutput{Policy: policy.String(), Name: rec.Name, Score: rec.Score}
	if *top > 0 {
		if res.Ranking, err = engine.Rank(p, *top); err != nil {
			return err
		}
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	renderRecommendation(out, res)
	return nil
}

func renderRecommendation(out io.Writer, res recommendOutput) {
	fmt.Fprintln(out, styles.Title("Destino recomendado"))
	styles.FprintFS(out, styles.Success, "%s  (score %.4f, política %s)", res.Name, res.Score, res.Policy)
	if len(res.Ranking) == 0 {
		return
	}
	fmt.Fprintln(out)
	for i, c := range res.Ranking {
		fmt.Fprintf(out, "%3d. %-40s %.4f %s\n", i+1, c.Name, c.Score, styles.ScoreBar(c.Score, 20))
	}
}
