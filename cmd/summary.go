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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/CuteBeaeast/treeomics/src/misc"
	"github.com/CuteBeaeast/treeomics/src/mutdata"
	"github.com/CuteBeaeast/treeomics/src/summary"
	"github.com/CuteBeaeast/treeomics/src/version"
)

// the command line arguments
var (
	summaryPatient *string // the patient dataset (JSON or compiled store)
	summaryOut     *string // basename of the output files
)

// the summary command (used by cobra)
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Draw the per-sample VAF boxplot and the coverage vs. variant reads scatter plot",
	Long:  `Draw the per-sample VAF boxplot and the coverage vs. variant reads scatter plot`,
	Run: func(cmd *cobra.Command, args []string) {
		runSummary()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	summaryPatient = summaryCmd.Flags().StringP("patient", "i", "", "patient dataset (.json or compiled store) - required")
	summaryOut = summaryCmd.Flags().StringP("out", "o", "./summary", "basename for the output files")
	summaryCmd.MarkFlagRequired("patient")
	RootCmd.AddCommand(summaryCmd)
}

/*
  The main function for the summary command
*/
func runSummary() {
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	logFH := misc.StartLogging(*logFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	log.Printf("this is treeomics (version %s)", version.GetVersion())
	log.Printf("starting the summary subcommand")
	// check the supplied parameters
	misc.ErrorCheck(misc.CheckFile(*summaryPatient))
	log.Printf("\tpatient dataset: %v", *summaryPatient)
	// load the patient dataset
	patient, err := mutdata.LoadPatient(*summaryPatient)
	misc.ErrorCheck(err)
	// draw the summary figures
	log.Printf("drawing the VAF boxplot...")
	misc.ErrorCheck(summary.VAFBoxplot(patient, *summaryOut+"-vaf-boxplot.png"))
	log.Printf("\tsaved: %v-vaf-boxplot.png", *summaryOut)
	log.Printf("drawing the reads scatter plot...")
	misc.ErrorCheck(summary.ReadsScatter(patient, *summaryOut+"-reads.png"))
	log.Printf("\tsaved: %v-reads.png", *summaryOut)
	log.Println("finished")
}
