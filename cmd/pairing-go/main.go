package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/perrygeo/pairing-go/pkg/pairing"
)

var rootCmd = &cobra.Command{
	Use:   "pairing-go",
	Short: "Encode pairs of non-negative integers as single integers using the Cantor pairing function",
}

var pairCmd = &cobra.Command{
	Use:   "pair A B",
	Short: "Encode the pair (A, B) into a single integer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseInt(args[0])
		if err != nil {
			return err
		}
		b, err := parseInt(args[1])
		if err != nil {
			return err
		}

		z, err := pairing.Pair(a, b)
		if err != nil {
			return err
		}
		fmt.Println(z)
		return nil
	},
}

var depairCmd = &cobra.Command{
	Use:   "depair Z",
	Short: "Decode a single integer back into the pair it encodes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		z, err := parseInt(args[0])
		if err != nil {
			return err
		}

		a, b, err := pairing.Depair(z)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", a, b)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the library version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(pairing.Version)
	},
}

func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("not a decimal integer: %q", s)
	}
	return n, nil
}

func init() {
	rootCmd.AddCommand(pairCmd, depairCmd, versionCmd)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
