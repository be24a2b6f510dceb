package main

import "github.com/ebubekirbastama/trendyol-color-variants-viewer/internal/ui"

func main() {
	ui.Run()
}
