package main

import (
	"Postcraft/internal/api/config"
	"Postcraft/internal/pkg/branding"
	"Postcraft/internal/pkg/imagegen"
	"Postcraft/internal/pkg/llm"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
)

type brandOptions struct {
	configDir string
	in        string
	prompt    string
	out       string
	captions  bool
}

func newRootCommand() *cobra.Command {
	opts := &brandOptions{}

	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Apply studio branding to an image",
		Long: `Brand resizes an image to the canonical 1080px width and overlays the studio logo,
the booking QR code and the address pill. The source is either a local file (--in)
or an image generated from a text prompt (--prompt).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configDir)
			if err != nil {
				return err
			}
			return runBrand(cmd.Context(), cfg, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.configDir, "config", "./configs", "Directory containing config.yaml")
	cmd.Flags().StringVarP(&opts.in, "in", "i", "", "Local image to brand")
	cmd.Flags().StringVarP(&opts.prompt, "prompt", "p", "", "Generate the source image from this prompt")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "branded.png", "Output PNG path")
	cmd.Flags().BoolVar(&opts.captions, "captions", false, "Also draft social captions for the result")

	return cmd
}

func runBrand(ctx context.Context, cfg *config.Config, opts *brandOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := loadSource(ctx, cfg, opts)
	if err != nil {
		return err
	}

	compositor := branding.NewCompositor(branding.Options{
		BaseURL:  cfg.Server.BaseURL,
		LogoPath: cfg.Branding.LogoPath,
		FontPath: cfg.Branding.FontPath,
		Address:  cfg.Branding.Address,
	})
	branded := compositor.Apply(src)
	if err = imaging.Save(branded, opts.out); err != nil {
		return fmt.Errorf("failed to save %s: %w", opts.out, err)
	}
	_, _ = fmt.Fprintf(out, "Saved %s (%dx%d)\n", opts.out, branded.Bounds().Dx(), branded.Bounds().Dy())

	if !opts.captions {
		return nil
	}

	model, err := llm.NewModel(ctx, cfg.LLM)
	if err != nil {
		return err
	}
	captions, err := llm.NewCaptionGenerator(model, cfg.LLM).Generate(ctx, opts.out, opts.prompt)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Caption generation failed (%v), using defaults\n", err)
		captions = llm.FallbackCaptions()
	}
	for _, platform := range []string{llm.PlatformLinkedIn, llm.PlatformFacebook, llm.PlatformInstagram} {
		_, _ = fmt.Fprintf(out, "\n[%s]\n%s\n", platform, captions.Map()[platform])
	}
	return nil
}

func loadSource(ctx context.Context, cfg *config.Config, opts *brandOptions) (image.Image, error) {
	switch {
	case opts.in != "":
		return imagegen.DecodeFile(opts.in)
	case opts.prompt != "":
		generator := imagegen.NewGenerator(cfg.ImageGen.URL, time.Duration(cfg.ImageGen.Timeout)*time.Second, nil)
		return generator.Generate(ctx, opts.prompt)
	default:
		return nil, errors.New("provide --in or --prompt")
	}
}
