package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/coralsense"
	"github.com/yacobolo/coralsense/internal/colors"
)

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Inspect theme colors and check contrast",
}

var colorInfoCmd = &cobra.Command{
	Use:   "info <name|class|literal>",
	Short: "Show a color in hex, RGB and HSL",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorInfo,
}

var colorContrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Compute the WCAG contrast ratio of two colors",
	Args:  cobra.ExactArgs(2),
	RunE:  runColorContrast,
}

var colorSuggestCmd = &cobra.Command{
	Use:   "suggest <background>",
	Short: "Suggest readable text colors for a background",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorSuggest,
}

var colorPalettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List theme colors grouped by palette",
	Args:  cobra.NoArgs,
	RunE:  runColorPalettes,
}

var colorSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find theme colors by name or hex",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorSearch,
}

var colorNearestCmd = &cobra.Command{
	Use:   "nearest <literal>",
	Short: "Find the theme colors perceptually closest to a color",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorNearest,
}

func init() {
	colorContrastCmd.Flags().String("level", "AA", "WCAG level: AA|AAA")
	colorNearestCmd.Flags().Int("count", 5, "Number of matches to print")

	for _, c := range []*cobra.Command{
		colorInfoCmd, colorContrastCmd, colorSuggestCmd,
		colorPalettesCmd, colorSearchCmd, colorNearestCmd,
	} {
		c.Flags().Bool("json", false, "Print the result as JSON")
		colorCmd.AddCommand(c)
	}
}

// colorOutput carries what every color subcommand needs to print.
type colorOutput struct {
	w         io.Writer
	asJSON    bool
	useColors bool
}

func newColorOutput(cmd *cobra.Command) colorOutput {
	asJSON, _ := cmd.Flags().GetBool("json")
	return colorOutput{
		w:         cmd.OutOrStdout(),
		asJSON:    asJSON,
		useColors: coralsense.ShouldUseColors(getBoolWithFallback("color", "color", false)),
	}
}

func (o colorOutput) encode(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (o colorOutput) line(c colors.Color) {
	fmt.Fprintf(o.w, "%s %-16s %s\n", coralsense.Swatch(c.Hex, o.useColors), c.Name, c.Hex)
}

// resolveColor accepts a theme color name, a color utility class or a literal.
func resolveColor(p *coralsense.Provider, s string) (*colors.Color, error) {
	if c := p.Colors().Resolve(s); c != nil {
		return c, nil
	}
	if c := p.Colors().FromClass(s); c != nil {
		return c, nil
	}
	return nil, errors.Errorf("unknown color %q", s)
}

func runColorInfo(cmd *cobra.Command, args []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}
	c, err := resolveColor(p, args[0])
	if err != nil {
		return err
	}

	o := newColorOutput(cmd)
	if o.asJSON {
		return o.encode(c)
	}

	o.line(*c)
	fmt.Fprintf(o.w, "  rgb(%d, %d, %d)\n", c.RGB.R, c.RGB.G, c.RGB.B)
	fmt.Fprintf(o.w, "  hsl(%d, %d%%, %d%%)\n", c.HSL.H, c.HSL.S, c.HSL.L)
	if c.RGBA != "" {
		fmt.Fprintf(o.w, "  %s\n  %s\n", c.RGBA, c.HSLA)
	}
	return nil
}

func runColorContrast(cmd *cobra.Command, args []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}
	fg, err := resolveColor(p, args[0])
	if err != nil {
		return err
	}
	bg, err := resolveColor(p, args[1])
	if err != nil {
		return err
	}

	levelFlag, _ := cmd.Flags().GetString("level")
	level := colors.ParseLevel(levelFlag)
	result := level.Evaluate(colors.ContrastRatio(fg.RGB, bg.RGB))

	o := newColorOutput(cmd)
	if o.asJSON {
		return o.encode(struct {
			Foreground string `json:"foreground"`
			Background string `json:"background"`
			Level      string `json:"level"`
			colors.WCAGResult
		}{fg.Hex, bg.Hex, string(level), result})
	}

	fmt.Fprintf(o.w, "%s on %s: %.2f:1\n", fg.Hex, bg.Hex, result.Ratio)
	fmt.Fprintf(o.w, "  %s normal text: %s\n", level, o.verdict(result.NormalText))
	fmt.Fprintf(o.w, "  %s large text:  %s\n", level, o.verdict(result.LargeText))
	return nil
}

func (o colorOutput) verdict(pass bool) string {
	if pass {
		return coralsense.RenderStyle(coralsense.StyleGreen, "pass", o.useColors)
	}
	return coralsense.RenderStyle(coralsense.StyleRed, "fail", o.useColors)
}

func runColorSuggest(cmd *cobra.Command, args []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}
	bg, err := resolveColor(p, args[0])
	if err != nil {
		return err
	}

	suggestions := p.Colors().SuggestTextColors(bg.Hex)
	o := newColorOutput(cmd)
	if o.asJSON {
		return o.encode(suggestions)
	}

	if len(suggestions) == 0 {
		fmt.Fprintf(o.w, "No theme color reaches %.1f:1 on %s\n", colors.MinTextContrast, bg.Hex)
		return nil
	}
	for _, s := range suggestions {
		fmt.Fprintf(o.w, "%s %-16s %s  %5.2f:1\n",
			coralsense.Swatch(s.Color.Hex, o.useColors), s.Color.Name, s.Color.Hex, s.Ratio)
	}
	return nil
}

func runColorPalettes(cmd *cobra.Command, _ []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}

	palettes := p.Colors().Palettes()
	o := newColorOutput(cmd)
	if o.asJSON {
		return o.encode(palettes)
	}

	for _, pal := range palettes {
		swatches := make([]string, 0, len(pal.Colors))
		for _, c := range pal.Colors {
			swatches = append(swatches, coralsense.Swatch(c.Hex, o.useColors))
		}
		sep := " "
		if o.useColors {
			sep = ""
		}
		fmt.Fprintf(o.w, "%-10s %s\n", pal.Name, strings.Join(swatches, sep))
	}
	return nil
}

func runColorSearch(cmd *cobra.Command, args []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}

	found := p.Colors().Search(args[0])
	o := newColorOutput(cmd)
	if o.asJSON {
		return o.encode(found)
	}

	for _, c := range found {
		o.line(c)
	}
	return nil
}

func runColorNearest(cmd *cobra.Command, args []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt("count")
	matches := p.Colors().Nearest(args[0], count)
	if matches == nil {
		return errors.Errorf("unknown color %q", args[0])
	}

	o := newColorOutput(cmd)
	if o.asJSON {
		return o.encode(matches)
	}

	for _, m := range matches {
		fmt.Fprintf(o.w, "%s %-16s %s  ΔE %.2f\n",
			coralsense.Swatch(m.Color.Hex, o.useColors), m.Color.Name, m.Color.Hex, m.Distance)
	}
	return nil
}
