// Command imagefx applies stylized effects to image files.
//
// Usage:
//
//	imagefx apply -e cartoon photo.jpg
//	imagefx apply -e oil-paint --out-dir painted/ --jobs 4 *.png
//	imagefx list
//	imagefx thumb --size 400x400 -o preview.png photo.jpg
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/afero"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
