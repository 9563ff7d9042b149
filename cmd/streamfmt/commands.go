// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/ik5/streamfmt"
	"github.com/ik5/streamfmt/asbd"
	"github.com/ik5/streamfmt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	errDecodeFailed = errors.New("one or more descriptors failed to decode")
	errNoCandidates = errors.New("no descriptors to rank")
	errProbeFailed  = errors.New("no file could be probed")
)

func decodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode TEXT...",
		Short: "Decode descriptors",
		Long:  "Decode each descriptor and print a readable summary of its fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.WithComponent(a.log, "decode")
			failed := false

			for _, text := range args {
				d, err := asbd.Decode(text)
				if err != nil {
					log.Error().Err(err).Str("text", text).Msg("decode failed")
					failed = true
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", text, d)
			}

			if failed {
				return errDecodeFailed
			}
			return nil
		},
	}
}

func compareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two descriptors",
		Long:  "Print less when A is preferred, greater when B is, equal when no rule separates them",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := asbd.Decode(args[0])
			if err != nil {
				return err
			}
			y, err := asbd.Decode(args[1])
			if err != nil {
				return err
			}

			ord := asbd.Compare(x, y)
			a.log.Debug().Stringer("a", x).Stringer("b", y).Stringer("ordering", ord).Msg("compared")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ord)
			fmt.Fprintf(out, "equal: %t\n", asbd.Equal(x, y))
			return nil
		},
	}
}

type rankEntry struct {
	text string
	d    asbd.Descriptor
}

// rankEntries decodes args, or the configured candidates when there are
// none.
func (a *app) rankEntries(args []string) ([]rankEntry, error) {
	if len(args) == 0 {
		ds, err := a.cfg.CandidateDescriptors()
		if err != nil {
			return nil, err
		}
		entries := make([]rankEntry, len(ds))
		for i, d := range ds {
			entries[i] = rankEntry{text: a.cfg.Candidates[i], d: d}
		}
		return entries, nil
	}

	entries := make([]rankEntry, 0, len(args))
	for _, text := range args {
		d, err := asbd.Decode(text)
		if err != nil {
			return nil, err
		}
		entries = append(entries, rankEntry{text: text, d: d})
	}
	return entries, nil
}

func rankCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rank [TEXT...]",
		Short: "Order descriptors best first",
		Long:  "Order descriptors by quality, best first. Without arguments the configured candidates are ranked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.rankEntries(args)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return errNoCandidates
			}

			asbd.SortByPreference(entries, func(e rankEntry) asbd.Descriptor { return e.d })

			for i, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\t%v\n", i+1, e.text, e.d)
			}
			return nil
		},
	}
}

func probeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe FILE...",
		Short: "Describe audio files",
		Long:  "Read each file's header, print its descriptor and mark the preferred file with *",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.WithComponent(a.log, "probe")
			reg := streamfmt.DefaultRegistry()

			cands := streamfmt.ProbeFiles(reg, args)
			best := streamfmt.Preferred(cands)

			for i, c := range cands {
				if c.Err != nil {
					log.Warn().Err(c.Err).Str("path", c.Path).Msg("probe failed")
					continue
				}

				mark := " "
				if i == best {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%v\n", mark, c.Path, c.Descriptor)
			}

			if best < 0 {
				return errProbeFailed
			}
			return nil
		},
	}
}

func resolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [TEXT]",
		Short: "Resolve a descriptor with fallback",
		Long:  "Decode TEXT, or the configured format, falling back to default_format when it is malformed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.WithComponent(a.log, "resolve")

			text := a.cfg.Format
			if len(args) == 1 {
				text = args[0]
			}
			if text == "" {
				log.Debug().Str("default_format", a.cfg.DefaultFormat).Msg("no format given")
				text = a.cfg.DefaultFormat
			}

			d, err := streamfmt.Resolve(text, a.cfg.Fallback())
			if err != nil {
				log.Warn().Err(err).Str("text", text).Str("default_format", a.cfg.DefaultFormat).Msg("using default format")
			}

			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}
