// Copyright © 2026 the treeomics authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// the command line arguments
var (
	profiling *bool   // create profile for go pprof
	logFile   *string // log file location
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "treeomics",
	Short: "render mutation tables and read count summaries from multi-sample sequencing data",
	Long: `
#####################################################################################
		TREEOMICS: plotting mutation patterns across tumour samples
#####################################################################################

 Treeomics renders a patient's per-mutation, per-sample classification states as a
 deterministically ordered, colour-encoded mutation table.

 Tables can be fused with a precomputed hierarchical clustering of the samples, or
 overlaid with the variant allele frequencies, coverage and putative classification
 errors identified by an externally inferred phylogeny. Supporting subcommands
 summarise per-sample VAF distributions and count reads at mutation loci in BAM files.`,
}

/*
  A function to add all child commands to the root command and sets flags appropriately
*/
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

/*
  A function to initalise the command line arguments
*/
func init() {
	profiling = RootCmd.PersistentFlags().Bool("profiling", false, "create the files needed to profile treeomics using the go tool pprof")
	logFile = RootCmd.PersistentFlags().String("logFile", "./treeomics.log", "filename for the log file")
}
