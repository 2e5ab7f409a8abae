package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gogpu/imagefx"
)

func newThumbCmd(fs afero.Fs) *cobra.Command {
	var (
		size   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "thumb -o OUTPUT INPUT",
		Short: "Write a preview that fits within --size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := parseSize(size)
			if err != nil {
				return err
			}

			img, err := imagefx.LoadFS(fs, args[0])
			if err != nil {
				return err
			}
			thumb, err := imagefx.Thumbnail(img, w, h)
			if err != nil {
				return err
			}
			if err := imagefx.SaveFS(fs, thumb, output); err != nil {
				return err
			}

			imagefx.Logger().Info("wrote thumbnail", "output", output,
				"width", thumb.Width(), "height", thumb.Height())
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "400x400", "bounding box WxH")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
