package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okian/swatch/internal/domain/color"
	"github.com/okian/swatch/internal/domain/pantone"
)

// printer writes command results as text or JSON.
type printer struct {
	w      io.Writer
	json   bool
	swatch bool
}

func (a *app) printer(cmd *cobra.Command) *printer {
	w := cmd.OutOrStdout()
	return &printer{
		w:      w,
		json:   a.v.GetBool(keyJSON),
		swatch: useSwatches(a.v.GetString(keyColor), w),
	}
}

// useSwatches resolves the --color mode; auto means only on a terminal.
func useSwatches(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// block renders a two-cell truecolor block for hex, or nothing.
func (p *printer) block(hex string) string {
	if !p.swatch {
		return ""
	}
	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", rgb.R, rgb.G, rgb.B)
}

func (p *printer) Match(r pantone.MatchResult) error {
	if p.json {
		return p.JSON(r)
	}
	_, err := fmt.Fprintf(p.w, "%s%-14s %s  %-22s distance=%.2f quality=%s\n",
		p.block(r.Pantone.Hex), r.Pantone.Code, r.Pantone.Hex, r.Pantone.Name, r.Distance, r.Quality)
	return err
}

func (p *printer) Matches(rs []pantone.MatchResult) error {
	if p.json {
		return p.JSON(rs)
	}
	for _, r := range rs {
		if err := p.Match(r); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) Colors(cs []pantone.Color) error {
	if p.json {
		return p.JSON(cs)
	}
	for _, c := range cs {
		if _, err := fmt.Fprintf(p.w, "%s%-14s %s  %s\n", p.block(c.Hex), c.Code, c.Hex, c.Name); err != nil {
			return err
		}
	}
	return nil
}
