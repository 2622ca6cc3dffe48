package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type wordsOptions struct {
	bits  int
	count int
}

// NewWordsCommand creates the words command.
func NewWordsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &wordsOptions{}

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print raw integer words, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.bits, "bits", 32, "word width (32|64)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 10, "number of words")

	return cmd
}

func runWords(rootOpts *RootOptions, opts *wordsOptions, cmd *cobra.Command) error {
	if opts.count < 0 {
		return fmt.Errorf("count must not be negative, got %d", opts.count)
	}
	r, _, _, err := rootOpts.engine(cmd)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	var line []byte
	switch opts.bits {
	case 32:
		buf := make([]uint32, opts.count)
		if err = r.FillUint32(buf, len(buf)); err != nil {
			return err
		}
		for _, v := range buf {
			line = strconv.AppendUint(line[:0], uint64(v), 10)
			line = append(line, '\n')
			_, _ = w.Write(line)
		}
	case 64:
		buf := make([]uint64, opts.count)
		if err = r.FillUint64(buf, len(buf)); err != nil {
			return err
		}
		for _, v := range buf {
			line = strconv.AppendUint(line[:0], v, 10)
			line = append(line, '\n')
			_, _ = w.Write(line)
		}
	default:
		return fmt.Errorf("invalid bits %d: must be 32 or 64", opts.bits)
	}
	return w.Flush()
}
