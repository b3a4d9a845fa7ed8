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
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/CuteBeaeast/treeomics/src/bamcov"
	"github.com/CuteBeaeast/treeomics/src/misc"
	"github.com/CuteBeaeast/treeomics/src/version"
)

// the command line arguments
var (
	coverageBAM  *string // the BAM file of one sample (STDIN when empty)
	coverageLoci *string // the mutation loci (BED4)
	coverageOut  *string // optional JSON output file
)

// the coverage command (used by cobra)
var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Count coverage and variant supporting reads at mutation loci in a BAM file",
	Long: `Count coverage and variant supporting reads at mutation loci in a BAM file

Loci are read from a BED4 file; the name field carries the gene name and may
append ":<base>" to name the variant allele, e.g. "TP53:T". Counts go to
STDOUT as a tab separated table and, with --out, to a JSON file that can be
folded into a patient dataset.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCoverage()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	coverageBAM = coverageCmd.Flags().StringP("bam", "b", "", "BAM file of one sample (default: STDIN)")
	coverageLoci = coverageCmd.Flags().StringP("loci", "l", "", "mutation loci (BED4) - required")
	coverageOut = coverageCmd.Flags().StringP("out", "o", "", "write the counts to a JSON file as well")
	coverageCmd.MarkFlagRequired("loci")
	RootCmd.AddCommand(coverageCmd)
}

// a function to check user supplied parameters
func coverageParamCheck() error {
	if *coverageBAM != "" {
		if err := misc.CheckFile(*coverageBAM); err != nil {
			return err
		}
		if err := misc.CheckExt(*coverageBAM, []string{"bam"}); err != nil {
			return err
		}
	}
	return misc.CheckFile(*coverageLoci)
}

/*
  The main function for the coverage command
*/
func runCoverage() {
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	logFH := misc.StartLogging(*logFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	log.Printf("this is treeomics (version %s)", version.GetVersion())
	log.Printf("starting the coverage subcommand")
	// check the supplied parameters
	misc.ErrorCheck(coverageParamCheck())
	// load the loci
	loci, err := bamcov.LoadBED(*coverageLoci)
	misc.ErrorCheck(err)
	log.Printf("\tloci: %d", len(loci))
	// sweep the BAM records
	log.Printf("counting reads...")
	counts, err := bamcov.Count(*coverageBAM, loci)
	misc.ErrorCheck(err)
	// report the counts
	misc.ErrorCheck(counts.WriteTSV(os.Stdout))
	if *coverageOut != "" {
		misc.ErrorCheck(counts.Dump(*coverageOut))
		log.Printf("\tsaved: %v", *coverageOut)
	}
	log.Println("finished")
}
