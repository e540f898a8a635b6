package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ml-classroom-service/internal/pkg/random"
	"ml-classroom-service/internal/pkg/urlchecker"
)

func newRandomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random <n>",
		Short: "Split 100 into n random positive integers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q", args[0])
			}

			parts, err := random.Ints(n)
			if err != nil {
				return err
			}

			strs := make([]string, len(parts))
			for i, p := range parts {
				strs[i] = strconv.Itoa(p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(strs, " "))
			return nil
		},
	}
}

func newURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "url <url>",
		Short: "Validate a URL and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical, err := urlchecker.Check(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), canonical)
			return nil
		},
	}
}
