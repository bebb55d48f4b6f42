// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-tate/pkg/tate"
	"github.com/consensys/go-tate/pkg/util"
)

// GetFlag gets an expected flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer flag, or panics if an error
// arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint64 gets an expected unsigned integer flag, or panics if an error
// arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or panics if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// ringFromFlags assembles the coefficient ring described by the persistent
// flags.
func ringFromFlags(cmd *cobra.Command) *tate.Ring {
	var (
		prime = new(big.Int).SetUint64(GetUint64(cmd, "prime"))
		names = strings.Split(GetString(cmd, "vars"), ",")
		prec  = int64(GetUint(cmd, "prec"))
		field = GetFlag(cmd, "field")
	)
	//
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	//
	ring, err := tate.NewRing(prime, names, prec, field)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return ring
}

// readGeneratorFile reads further generator expressions from the file named
// by the "file" flag, if any.
func readGeneratorFile(cmd *cobra.Command) []string {
	filename := GetString(cmd, "file")
	//
	if filename == "" {
		return nil
	}
	//
	return util.ReadInputFile(filename)
}

// parseSeriesArgs parses each command-line argument as a series over the
// given ring.
func parseSeriesArgs(ring *tate.Ring, args []string) []*tate.Series {
	series := make([]*tate.Series, len(args))
	//
	for i, arg := range args {
		f, err := tate.ParseSeries(ring, arg)
		//
		if err != nil {
			fmt.Printf("parsing %q: %s\n", arg, err)
			os.Exit(2)
		}
		//
		series[i] = f
	}
	//
	return series
}

// printSeries writes one series per line, clipping each line to the
// terminal width when writing to an interactive terminal.
func printSeries(series []*tate.Series) {
	width := 0
	//
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	//
	for _, f := range series {
		line := f.String()
		//
		if width > 3 && len(line) > width {
			line = line[:width-3] + "..."
		}
		//
		fmt.Println(line)
	}
}
