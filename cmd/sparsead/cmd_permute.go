package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsead/indexset"
	"github.com/katalvlaran/sparsead/named"
	"github.com/katalvlaran/sparsead/sparse"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// permuteCmd re-lays a named array into another axis order or shape.
func (a *app) permuteCmd() *cobra.Command {
	var order, reshape string
	cmd := &cobra.Command{
		Use:   "permute LAYOUT DATA",
		Short: "Transpose or reshape a named-axis array",
		Long: `LAYOUT lists axis:extent pairs in physical order, DATA the row-major
values. --order gives the new physical axis order; --reshape gives a target
size descriptor "{(axis,extent), ...}" whose extra axes must have extent 1.

Example:
  sparsead permute 2:2,0:3 1,2,3,4,5,6 --order 0,2
  # permutation [1 0]
  # {(0,3), (2,2)}[1 4 2 5 3 6]`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.runPermute(args[0], args[1], order, reshape)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&order, "order", "", "new physical axis order, e.g. 0,2")
	cmd.Flags().StringVar(&reshape, "reshape", "", `target sizes, e.g. "{(0,3), (1,1), (2,2)}"`)

	return cmd
}

func (a *app) runPermute(layout, data, order, reshape string) (string, error) {
	axes, extents, err := parseLayout(layout)
	if err != nil {
		return "", err
	}
	values, err := parseList(data, func(s string) (sparse.Real, error) {
		f, err := strconv.ParseFloat(s, 64)
		return sparse.Real(f), err
	})
	if err != nil {
		return "", fmt.Errorf("data: %w", err)
	}
	arr, err := named.NewLayout(axes, extents, values)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if order != "" {
		target, err := parseList(order, strconv.Atoi)
		if err != nil {
			return "", fmt.Errorf("order: %w", err)
		}
		perm, err := physicalPermutation(axes, target)
		if err != nil {
			return "", err
		}
		if arr, err = named.Transpose(arr, target); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "permutation %v\n", perm)
	}
	if reshape != "" {
		sizes, err := sparse.ParseFunc(reshape, strconv.Atoi)
		if err != nil {
			return "", fmt.Errorf("reshape: %w", err)
		}
		if arr, err = named.Reshape(arr, sizes); err != nil {
			return "", err
		}
	}
	a.logger.Debug("permute", zap.Ints("axes", arr.Axes()), zap.Ints("extents", arr.Extents()))
	fmt.Fprintln(&b, arr)

	return b.String(), nil
}

// physicalPermutation maps each source axis, in written order, to its
// position in target.
func physicalPermutation(src, target []int) ([]int, error) {
	from, err := indexset.Sort(entries(src), indexset.IdentityOrder, nil)
	if err != nil {
		return nil, err
	}
	to, err := indexset.Sort(entries(target), indexset.IdentityOrder, nil)
	if err != nil {
		return nil, err
	}

	return named.PermutationArray(from, to)
}

func entries(axes []int) []indexset.Entry[struct{}] {
	out := make([]indexset.Entry[struct{}], len(axes))
	for k, ax := range axes {
		out[k].Index = ax
	}

	return out
}

// parseLayout reads "axis:extent,axis:extent".
func parseLayout(s string) (axes, extents []int, err error) {
	for _, part := range strings.Split(s, ",") {
		ax, ext, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, nil, fmt.Errorf("layout %q: expected axis:extent", part)
		}
		a, err := strconv.Atoi(ax)
		if err != nil {
			return nil, nil, fmt.Errorf("layout %q: %w", part, err)
		}
		e, err := strconv.Atoi(ext)
		if err != nil {
			return nil, nil, fmt.Errorf("layout %q: %w", part, err)
		}
		axes, extents = append(axes, a), append(extents, e)
	}

	return axes, extents, nil
}

// parseList reads a comma-separated list.
func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	parts := strings.Split(s, ",")
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		v, err := parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
