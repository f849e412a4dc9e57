package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gotrip/cli/internal/commands"
	"gotrip/pkg/styles"
)

const usage = `uso: viajero <comando> [flags]

comandos:
  recommend      recomienda un destino para un perfil
  catalog        lista el catálogo de destinos
  distribution   frecuencia de elección de la política sampled
  seed           carga el catálogo integrado en MongoDB
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "recommend":
		err = commands.Recommend(args, os.Stdout)
	case "catalog":
		err = commands.Catalog(args, os.Stdout)
	case "distribution":
		err = commands.Distribution(args, os.Stdout)
	case "seed":
		err = commands.Seed(args, os.Stdout)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, styles.SprintfS(styles.Error, "[viajero] %v", err))
		os.Exit(1)
	}
}
