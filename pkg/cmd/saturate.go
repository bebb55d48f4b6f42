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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-tate/pkg/tate"
)

// saturateCmd represents the saturate command
var saturateCmd = &cobra.Command{
	Use:   "saturate [flags] generator...",
	Short: "Saturate the ideal generated by the given series.",
	Long: `Compute the closure under division by the uniformiser of the
	ideal generated by the given series, printing the Gröbner basis of
	the saturation and whether the ideal was already saturated.`,
	Run: func(cmd *cobra.Command, args []string) {
		args = append(args, readGeneratorFile(cmd)...)
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		ring := ringFromFlags(cmd)
		ideal := tate.NewIdeal(ring, parseSeriesArgs(ring, args)...)
		//
		saturated, err := ideal.IsSaturated()
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		saturation, err := ideal.Saturate()
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		basis, err := saturation.GroebnerBasis(0, tate.BuchbergerIntegral)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		printSeries(basis)
		fmt.Printf("saturated: %t\n", saturated)
	},
}

func init() {
	rootCmd.AddCommand(saturateCmd)
	saturateCmd.Flags().String("file", "", "read additional generators from a file (one per line)")
}
