// Package main provides the entry point for the resume_compiler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-compiler/internal/config"
	"github.com/jonathan/resume-compiler/internal/qr"
	"github.com/spf13/cobra"
)

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Write a QR code PNG for a link",
	Long:  "Encodes a link as a square grayscale PNG. Without --link the link and size come from the document's qr block.",
	RunE:  runQR,
}

var (
	qrFlags documentFlags
	qrLink  string
	qrDim   int
)

func init() {
	qrFlags.register(qrCmd)
	qrCmd.Flags().StringVarP(&qrLink, "link", "l", "", "Link to encode (default: qr.link from the document)")
	qrCmd.Flags().IntVar(&qrDim, "dim", 0, "Image width and height in pixels (default: qr.dim from the document)")

	rootCmd.AddCommand(qrCmd)
}

func runQR(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	qrFlags.apply(cmd, &cfg)

	link, dim := qrLink, qrDim
	if link == "" || dim == 0 {
		doc, err := documentLoader(cfg)()
		if err != nil {
			return err
		}
		if link == "" {
			link = doc.QR.Link
		}
		if dim == 0 {
			dim = doc.QR.Dim
		}
	}
	if link == "" {
		return &config.Error{Message: "no link to encode: pass --link or set qr.link in the document"}
	}
	if dim <= 0 {
		return &config.Error{Message: "no image size: pass --dim or set qr.dim in the document"}
	}

	if err := qr.NewGenerator().Generate(link, dim, cfg.QRImage); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Wrote %dx%d QR code to %s\n", dim, dim, cfg.QRImage)
	return nil
}
