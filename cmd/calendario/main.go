// calendario consulta el calendario hábil colombiano sin levantar la API y genera
// el script SQL que puebla la tabla de festivos.
//
// Uso:
//
//	go run ./cmd/calendario contar 2025-01-05 2025-01-10
//	go run ./cmd/calendario sumar 2025-01-06 16
//	go run ./cmd/calendario festivos 2025
//	go run ./cmd/calendario sembrar --desde 2024 --hasta 2030
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
