package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xos"

	"oss.pipworks.com/dicesvg"
	"oss.pipworks.com/dicesvg/diceskins"
	"oss.pipworks.com/dicesvg/lib/log"
	"oss.pipworks.com/dicesvg/lib/version"
)

func main() {
	env := xos.NewEnv(os.Environ())
	clog := cmdlog.Log(env, os.Stderr)

	if err := run(context.Background(), env, clog, os.Args[1:]); err != nil {
		clog.Error.Print(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, env *xos.Env, clog *cmdlog.Logger, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to render die")

	flags := pflag.NewFlagSet("dicesvg", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(os.Stderr)

	sizeFlag := flags.IntP("size", "s", dicesvg.DefaultSize, "die size in SVG units.")
	valueFlag := flags.IntP("value", "n", 1, "face value to show, 1 through 6.")
	skinFlag := flags.String("skin", envDefault(env, "DICESVG_SKIN", diceskins.DefaultName), "skin name, see --list-skins. $DICESVG_SKIN is also accepted.")
	materialFlag := flags.String("material", "solid", "face material: solid, clearGlass, frostedGlass or ghost.")
	tintFlag := flags.String("tint", "", "tint override for the translucent and ghost materials.")
	effectsFlag := flags.StringArray("effect", nil, "effect to layer, e.g. glow, glow:high:#10b981, aura:electric, sparkles:8, rim-marquee. Repeatable.")
	saltFlag := flags.String("salt", "", "fix the resource id namespace for reproducible output.")
	seedFlag := flags.Int64("seed", 0, "fix the sparkle random source for reproducible output.")
	outputFlag := flags.StringP("output", "o", "-", "output path. Use - for stdout.")
	sharedDefsFlag := flags.Bool("shared-defs", false, "print the shared <defs> fragment for page-level injection and exit.")
	listSkinsFlag := flags.Bool("list-skins", false, "list the skin catalog and exit.")
	debugFlag := flags.BoolP("debug", "d", truthy(env.Getenv("DICESVG_DEBUG")), "print debug logs.")
	versionFlag := flags.BoolP("version", "v", false, "print version and exit.")

	err = flags.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Printf("Usage: dicesvg [flags]\n\nFlags:\n%s", flags.FlagUsages())
		return nil
	}
	if err != nil {
		return err
	}

	ctx = log.Stderr(ctx)
	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}

	switch {
	case *versionFlag:
		fmt.Println(version.Version)
		return nil
	case *listSkinsFlag:
		fmt.Print(diceskins.CLIString())
		return nil
	case *sharedDefsFlag:
		return writeOutput(clog, *outputFlag, dicesvg.SharedDefs())
	}

	if *valueFlag < 1 || *valueFlag > 6 {
		return fmt.Errorf("value must be between 1 and 6, got %d", *valueFlag)
	}

	effects, err := parseEffects(clog, *effectsFlag)
	if err != nil {
		return err
	}

	cfg := dicesvg.Config{
		Size:     *sizeFlag,
		Value:    *valueFlag,
		Skin:     *skinFlag,
		Material: dicesvg.Material(*materialFlag),
		Tint:     *tintFlag,
		Effects:  effects,
	}

	opts := &dicesvg.RenderOpts{}
	if *saltFlag != "" {
		opts.Salt = saltFlag
	}
	if flags.Changed("seed") {
		opts.Seed = seedFlag
	}

	log.Debug(ctx, "rendering die",
		slog.F("value", cfg.Value),
		slog.F("skin", cfg.Skin),
		slog.F("material", string(cfg.Material)),
		slog.F("effects", len(cfg.Effects)),
	)

	return writeOutput(clog, *outputFlag, dicesvg.Render(cfg, opts))
}

func writeOutput(clog *cmdlog.Logger, path, doc string) error {
	if path == "-" {
		_, err := fmt.Fprintln(os.Stdout, doc)
		return err
	}
	if err := os.WriteFile(path, []byte(doc+"\n"), 0644); err != nil {
		return err
	}
	clog.Success.Printf("wrote %s", path)
	return nil
}

var knownEffects = map[dicesvg.EffectType]bool{
	dicesvg.EffectGlow:       true,
	dicesvg.EffectAura:       true,
	dicesvg.EffectSparkles:   true,
	dicesvg.EffectRimMarquee: true,
}

// parseEffects turns specs of the form type[:arg]... into effect
// configs. Args are recognized by shape: high/low is a strength,
// pulse/electric an aura style, #... a color and a bare integer a
// sparkle count.
func parseEffects(clog *cmdlog.Logger, specs []string) ([]dicesvg.Effect, error) {
	var effects []dicesvg.Effect
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		ef := dicesvg.Effect{Type: dicesvg.EffectType(parts[0])}
		if !knownEffects[ef.Type] {
			// the renderer skips these; warn so a typo is not silent
			clog.Warn.Printf("unknown effect %q will render nothing", parts[0])
		}
		for _, arg := range parts[1:] {
			switch {
			case arg == "high" || arg == "low":
				ef.Strength = dicesvg.Strength(arg)
			case arg == "pulse" || arg == "electric":
				ef.Style = dicesvg.AuraStyle(arg)
			case strings.HasPrefix(arg, "#"):
				ef.Color = arg
			default:
				n, err := strconv.Atoi(arg)
				if err != nil {
					return nil, fmt.Errorf("unrecognized effect argument %q in %q", arg, spec)
				}
				ef.Count = n
			}
		}
		effects = append(effects, ef)
	}
	return effects, nil
}

func envDefault(env *xos.Env, key, fallback string) string {
	if v := env.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func truthy(s string) bool {
	return s == "1" || s == "true"
}
