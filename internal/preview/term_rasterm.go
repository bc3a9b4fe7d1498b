//go:build !windows

package preview

import (
	"fmt"
	"image"
	"os"

	"github.com/BourgeoisBear/rasterm"
)

func printRaster(i image.Image) bool {
	if rasterm.IsTermKitty() {
		rasterm.Settings{}.KittyWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return true
	}
	if rasterm.IsTermItermWez() {
		rasterm.Settings{}.ItermWriteImage(os.Stdout, i)
		fmt.Printf("\n")
		return true
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		rasterm.Settings{}.SixelWriteImage(os.Stdout, Quantize(i, 64))
		fmt.Printf("\n")
		return true
	}
	return false
}
