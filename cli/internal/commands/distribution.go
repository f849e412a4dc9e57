package commands

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"

	"gotrip/pkg/recommender"
	"gotrip/pkg/styles"
)

// Pick es la frecuencia con la que salió un destino.
type Pick struct {
	Name  string
	Score float64
	Count int
}

// Tally ejecuta runs recomendaciones repartidas entre workers goroutines y
// devuelve las frecuencias ordenadas de mayor a menor.
func Tally(engine *recommender.Recommender, p recommender.UserProfile, runs, workers int) ([]Pick, error) {
	if runs < 1 {
		return nil, errors.New("runs debe ser >= 1")
	}
	if workers < 1 {
		workers = 1
	}
	if workers > runs {
		workers = runs
	}

	partials := make([]map[string]Pick, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		n := runs / workers
		if w < runs%workers {
			n++
		}
		wg.Add(1)
		go func(w, n int) {
			defer wg.Done()
			acc := make(map[string]Pick)
			for i := 0; i < n; i++ {
				rec, err := engine.Recommend(p)
				if err != nil {
					errs[w] = err
					return
				}
				pk := acc[rec.Name]
				pk.Name, pk.Score = rec.Name, rec.Score
				pk.Count++
				acc[rec.Name] = pk
			}
			partials[w] = acc
		}(w, n)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	merged := make(map[string]Pick)
	for _, part := range partials {
		for name, pk := range part {
			m := merged[name]
			m.Name, m.Score = pk.Name, pk.Score
			m.Count += pk.Count
			merged[name] = m
		}
	}

	out := make([]Pick, 0, len(merged))
	for _, pk := range merged {
		out = append(out, pk)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Distribution muestra cuántas veces la política sampled elige cada destino.
func Distribution(args []string, out io.Writer) error {
	fs := newFlagSet("distribution")
	fs.SetOutput(out)
	var pf profileFlags
	pf.register(fs)
	runs := fs.Int("runs", 1000, "cantidad de recomendaciones")
	topK := fs.Int("k", recommender.DefaultTopK, "tamaño del top-K muestreado")
	workers := fs.Int("workers", runtime.NumCPU(), "goroutines concurrentes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := pf.profile()
	if err != nil {
		return err
	}
	opts := []recommender.Option{
		recommender.WithPolicy(recommender.PolicySampledTopK),
		recommender.WithTopK(*topK),
	}
	if pf.seed != 0 {
		opts = append(opts, recommender.WithSeed(pf.seed))
	}
	engine := recommender.New(recommender.DefaultCatalog(), opts...)

	picks, err := Tally(engine, p, *runs, *workers)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, styles.Title(fmt.Sprintf("Distribución sobre %d corridas (top-%d)", *runs, engine.TopK())))
	for _, pk := range picks {
		share := float64(pk.Count) / float64(*runs)
		fmt.Fprintf(out, "%-40s %.4f %6d %5.1f%% %s\n", pk.Name, pk.Score, pk.Count, share*100, styles.ScoreBar(share, 20))
	}
	return nil
}
