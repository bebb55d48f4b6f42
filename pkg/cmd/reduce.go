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

// reduceCmd represents the reduce command
var reduceCmd = &cobra.Command{
	Use:   "reduce [flags] series generator...",
	Short: "Reduce a series against the ideal generated by the given series.",
	Long: `Reduce a series against the Gröbner basis of the ideal generated
	by the given series, reporting the remainder and whether the series
	belongs to the ideal (i.e. whether the remainder vanishes).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			ring   = ringFromFlags(cmd)
			series = parseSeriesArgs(ring, args)
			ideal  = tate.NewIdeal(ring, series[1:]...)
		)
		//
		basis, err := ideal.GroebnerBasis(0, tate.BuchbergerIntegral)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		remainder, err := series[0].Reduce(basis, true, true, !ring.IsField())
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		printSeries([]*tate.Series{remainder})
		fmt.Printf("member: %t\n", remainder.IsZero())
	},
}

func init() {
	rootCmd.AddCommand(reduceCmd)
}
