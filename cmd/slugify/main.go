// Package main implements the CLI for slugify. Every option is exposed as a
// flag with an environment variable alias, so the tool can be driven from
// scripts and comparison harnesses alike.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/klingtnet/slugify"
	"github.com/klingtnet/slugify/golden"
)

const (
	InternalError = iota + 1
	BadArgument
)

func optionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "entities",
			Usage:   "decode named HTML character references (&amp;)",
			Value:   true,
			EnvVars: []string{"ENTITIES"},
		},
		&cli.BoolFlag{
			Name:    "decimal",
			Usage:   "decode decimal character references (&#381;)",
			Value:   true,
			EnvVars: []string{"DECIMAL"},
		},
		&cli.BoolFlag{
			Name:    "hexadecimal",
			Usage:   "decode hexadecimal character references (&#x17D;)",
			Value:   true,
			EnvVars: []string{"HEXADECIMAL"},
		},
		&cli.IntFlag{
			Name:    "max-length",
			Usage:   "maximum slug length in codepoints, 0 means unlimited",
			EnvVars: []string{"MAX_LENGTH"},
		},
		&cli.BoolFlag{
			Name:    "word-boundary",
			Usage:   "do not split words when truncating",
			EnvVars: []string{"WORD_BOUNDARY"},
		},
		&cli.StringFlag{
			Name:    "separator",
			Usage:   "string used to join slug tokens",
			Value:   slugify.DefaultSeparator,
			EnvVars: []string{"SEPARATOR"},
		},
		&cli.BoolFlag{
			Name:    "save-order",
			Usage:   "compatibility flag, truncation is always strictly left-to-right",
			EnvVars: []string{"SAVE_ORDER"},
		},
		&cli.StringSliceFlag{
			Name:    "stopword",
			Usage:   "token to drop from the slug, may be repeated",
			EnvVars: []string{"STOPWORDS"},
		},
		&cli.StringFlag{
			Name:    "pattern",
			Usage:   "regular expression matching disallowed characters",
			EnvVars: []string{"REGEX_PATTERN"},
		},
		&cli.BoolFlag{
			Name:    "lowercase",
			Usage:   "fold the slug to lower case",
			Value:   true,
			EnvVars: []string{"LOWERCASE"},
		},
		&cli.StringSliceFlag{
			Name:    "replacement",
			Usage:   "literal replacement as from=>to, applied in order, may be repeated",
			EnvVars: []string{"REPLACEMENTS"},
		},
		&cli.BoolFlag{
			Name:    "allow-unicode",
			Usage:   "keep letters of any script instead of folding to ASCII",
			EnvVars: []string{"ALLOW_UNICODE"},
		},
		&cli.BoolFlag{
			Name:    "transliterate-icons",
			Usage:   "replace known pictographs with their word form",
			EnvVars: []string{"TRANSLITERATE_ICONS"},
		},
	}
}

func parseReplacements(raw []string) ([]slugify.Replacement, error) {
	replacements := make([]slugify.Replacement, 0, len(raw))
	for _, entry := range raw {
		from, to, ok := strings.Cut(entry, "=>")
		if !ok {
			return nil, fmt.Errorf("replacement %q is not of the form from=>to", entry)
		}
		replacements = append(replacements, slugify.Replacement{From: from, To: to})
	}

	return replacements, nil
}

func optionsFromFlags(c *cli.Context) (slugify.Options, error) {
	replacements, err := parseReplacements(c.StringSlice("replacement"))
	if err != nil {
		return slugify.Options{}, err
	}

	opts := slugify.DefaultOptions()
	opts.Entities = c.Bool("entities")
	opts.Decimal = c.Bool("decimal")
	opts.Hexadecimal = c.Bool("hexadecimal")
	opts.MaxLength = c.Int("max-length")
	opts.WordBoundary = c.Bool("word-boundary")
	opts.Separator = c.String("separator")
	opts.SaveOrder = c.Bool("save-order")
	opts.Stopwords = c.StringSlice("stopword")
	opts.Pattern = c.String("pattern")
	opts.Lowercase = c.Bool("lowercase")
	opts.Replacements = replacements
	opts.AllowUnicode = c.Bool("allow-unicode")
	opts.TransliterateIcons = c.Bool("transliterate-icons")

	return opts, nil
}

// inputText returns the first argument, or everything from stdin with the
// trailing newline removed.
func inputText(c *cli.Context) (string, error) {
	if c.Args().Present() {
		return strings.Join(c.Args().Slice(), " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return strings.TrimSuffix(string(data), "\n"), nil
}

func run(c *cli.Context) error {
	opts, err := optionsFromFlags(c)
	if err != nil {
		return cli.Exit(err.Error(), BadArgument)
	}

	slugifier, err := slugify.NewSlugifier(opts)
	if err != nil {
		return cli.Exit(fmt.Sprintf("bad options: %s", err.Error()), BadArgument)
	}

	text, err := inputText(c)
	if err != nil {
		return cli.Exit(err.Error(), InternalError)
	}

	fmt.Println(slugifier.Slugify(text))

	return nil
}

func goldenFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "golden",
			Usage:    "path to the golden JSON file",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "number of cases checked in parallel",
			Value: runtime.NumCPU(),
		},
	}
}

func verify(c *cli.Context) error {
	f, err := golden.Load(c.String("golden"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("loading golden file failed: %s", err.Error()), BadArgument)
	}

	mismatches, err := f.Verify(c.Context, c.Int("concurrency"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("verification failed: %s", err.Error()), BadArgument)
	}
	if len(mismatches) > 0 {
		for _, mismatch := range mismatches {
			fmt.Fprintln(os.Stderr, mismatch.String())
		}
		return cli.Exit(fmt.Sprintf("%d of %d cases do not match", len(mismatches), len(f)), InternalError)
	}

	fmt.Printf("all %d cases match\n", len(f))

	return nil
}

func update(c *cli.Context) error {
	path := c.String("golden")
	f, err := golden.Load(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("loading golden file failed: %s", err.Error()), BadArgument)
	}

	err = f.Update(c.Context, c.Int("concurrency"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("updating golden file failed: %s", err.Error()), BadArgument)
	}

	err = f.Save(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("writing %q failed: %s", path, err.Error()), InternalError)
	}

	return nil
}

func main() {
	app := cli.App{
		Name:        "slugify",
		Usage:       "turn text into URL-safe slugs",
		Description: "Reads text from the arguments or stdin and prints the slug. Flags can also be set through their environment variable alias.",
		Flags:       optionFlags(),
		Action:      run,
		Commands: []*cli.Command{
			{
				Name:   "verify",
				Usage:  "check a golden file against this implementation",
				Flags:  goldenFlags(),
				Action: verify,
			},
			{
				Name:   "update",
				Usage:  "regenerate the expected slugs in a golden file",
				Flags:  goldenFlags(),
				Action: update,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
