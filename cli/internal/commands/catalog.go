package commands

import (
	"fmt"
	"io"
	"strings"

	"gotrip/pkg/recommender"
	"gotrip/pkg/styles"

	"github.com/goccy/go-json"
)

type catalogRow struct {
	Name      string   `json:"name"`
	Tags      []string `json:"tags"`
	DailyCost float64  `json:"daily_cost"`
	Budget    string   `json:"budget"`
	IdealFor  string   `json:"ideal_for"`
}

// Catalog lista el catálogo integrado con el tramo de presupuesto derivado.
func Catalog(args []string, out io.Writer) error {
	fs := newFlagSet("catalog")
	fs.SetOutput(out)
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dests := recommender.DefaultCatalog().Destinations()
	rows := make([]catalogRow, len(dests))
	for i, d := range dests {
		tags := make([]string, len(d.Tags))
		for j, t := range d.Tags {
			tags[j] = t.String()
		}
		rows[i] = catalogRow{
			Name:      d.Name,
			Tags:      tags,
			DailyCost: d.DailyCost,
			Budget:    d.Bucket().String(),
			IdealFor:  d.IdealFor.Label(),
		}
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Fprintln(out, styles.Title(fmt.Sprintf("Catálogo (%d destinos)", len(rows))))
	for _, r := range rows {
		fmt.Fprintf(out, "%-40s %6.0f USD/día  %-9s %-11s %s\n",
			r.Name, r.DailyCost, r.Budget, r.IdealFor,
			styles.SprintfS(styles.Muted, "%s", strings.Join(r.Tags, ", ")))
	}
	return nil
}
