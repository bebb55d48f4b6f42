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

// basisCmd represents the basis command
var basisCmd = &cobra.Command{
	Use:   "basis [flags] generator...",
	Short: "Compute the Gröbner basis of the ideal generated by the given series.",
	Long: `Compute the canonical Gröbner basis of the ideal generated by
	the given series, truncated at the configured precision.  Each
	generator is given as a polynomial expression in the ring
	variables, e.g. "9*x^2 + 5*x*y^2".`,
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
		algorithm := tate.Buchberger
		//
		if GetFlag(cmd, "integral") {
			algorithm = tate.BuchbergerIntegral
		}
		//
		ring := ringFromFlags(cmd)
		ideal := tate.NewIdeal(ring, parseSeriesArgs(ring, args)...)
		//
		basis, err := ideal.GroebnerBasis(0, algorithm)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		printSeries(basis)
	},
}

func init() {
	rootCmd.AddCommand(basisCmd)
	basisCmd.Flags().Bool("integral", false, "run the computation over the ring of integers")
	basisCmd.Flags().String("file", "", "read additional generators from a file (one per line)")
}
