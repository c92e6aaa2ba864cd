package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/swatch/internal/domain/pantone"
)

const defaultNearest = 5

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match HEX",
		Short: "Find the closest reference color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.Match(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd).Match(r)
		},
	}
}

func (a *app) nearestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearest HEX",
		Short: "List the closest reference colors, nearest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}
			if n < 1 {
				return fmt.Errorf("count must be positive")
			}
			rs, err := a.svc.Nearest(cmd.Context(), args[0], n)
			if err != nil {
				return err
			}
			return a.printer(cmd).Matches(rs)
		},
	}
	cmd.Flags().IntP("count", "n", defaultNearest, "number of colors to list")
	return cmd
}

func (a *app) complementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complement HEX",
		Short: "Find the reference color closest to the RGB complement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.Complement(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd).Match(r)
		},
	}
}

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance HEX HEX",
		Short: "Euclidean RGB distance between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.svc.Distance(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			if p.json {
				return p.JSON(d)
			}
			_, err = fmt.Fprintf(p.w, "%s%s %s%s distance=%.2f quality=%s\n",
				p.block(d.A), d.A, p.block(d.B), d.B, d.Distance, d.Quality)
			return err
		},
	}
}

func (a *app) hslCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hsl HEX",
		Short: "Convert a hex color to HSL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.svc.HSL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			if p.json {
				return p.JSON(h)
			}
			_, err = fmt.Fprintf(p.w, "%s%s rgb(%d, %d, %d) hsl(%d, %d%%, %d%%)\n",
				p.block(h.Hex), h.Hex, h.RGB.R, h.RGB.G, h.RGB.B, h.HSL.H, h.HSL.S, h.HSL.L)
			return err
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the reference table",
	}
	search := func(use, short string, fn func(*cobra.Command, string) pantone.SearchResult) *cobra.Command {
		return &cobra.Command{
			Use:   use + " QUERY",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res := fn(cmd, args[0])
				p := a.printer(cmd)
				if p.json {
					return p.JSON(res)
				}
				return p.Colors(res.Matches)
			},
		}
	}
	cmd.AddCommand(
		search("code", "Colors whose code contains QUERY", func(c *cobra.Command, q string) pantone.SearchResult {
			return a.svc.SearchCode(c.Context(), q)
		}),
		search("name", "Colors whose name contains QUERY", func(c *cobra.Command, q string) pantone.SearchResult {
			return a.svc.SearchName(c.Context(), q)
		}),
	)
	return cmd
}

func (a *app) familyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "family [NAME]",
		Short: "List the colors of a family, or the family names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(cmd)
			if len(args) == 0 {
				if p.json {
					return p.JSON(a.svc.Families())
				}
				for _, f := range a.svc.Families() {
					if _, err := fmt.Fprintln(p.w, f); err != nil {
						return err
					}
				}
				return nil
			}
			return p.Colors(a.svc.Family(cmd.Context(), args[0]))
		},
	}
}

func (a *app) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the loaded reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printer(cmd).Colors(a.svc.Table())
		},
	}
}

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Extract the dominant reference colors of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := a.svc.Analyze(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			p := a.printer(cmd)
			if p.json {
				return p.JSON(res)
			}
			if _, err := fmt.Fprintf(p.w, "%dx%d %s, %d pixels sampled\n",
				res.Width, res.Height, res.Format, res.Stats.Sampled); err != nil {
				return err
			}
			return p.Matches(res.Colors)
		},
	}
	cmd.Flags().Int("max-dimension", 2_048, "downscale images whose longest side exceeds this (0 disables)")
	return cmd
}
