//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of toothpick-fractal requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/toothpick` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless render, use ./cmd/toothpick-svg instead.")
	os.Exit(2)
}
