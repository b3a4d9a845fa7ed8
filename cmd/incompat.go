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
	"errors"
	"log"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/CuteBeaeast/treeomics/src/misc"
	"github.com/CuteBeaeast/treeomics/src/mutdata"
	"github.com/CuteBeaeast/treeomics/src/render"
	"github.com/CuteBeaeast/treeomics/src/table"
	"github.com/CuteBeaeast/treeomics/src/version"
)

// the command line arguments
var (
	incompatPatient   *string // the patient dataset (JSON or compiled store)
	incompatPhylogeny *string // the externally inferred phylogeny result (JSON)
	incompatStyle     *string // optional YAML style overrides
	incompatOut       *string // basename of the output files
	incompatBundle    *bool   // tar.gz the plots once drawn
)

// the incompat command (used by cobra)
var incompatCmd = &cobra.Command{
	Use:   "incompat",
	Short: "Draw the mutations with evolutionarily incompatible patterns, with VAF and coverage intensities",
	Long: `Draw the mutations with evolutionarily incompatible patterns, with VAF and coverage intensities

The phylogeny result selects which mutations are shown: the conflicting
mutations of a compatible phylogeny, the incompatible sample positions of a
resolved phylogeny, or the putative false positives and false negatives of a
maximum likelihood phylogeny (drawn as half-height overlays).`,
	Run: func(cmd *cobra.Command, args []string) {
		runIncompat()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	incompatPatient = incompatCmd.Flags().StringP("patient", "i", "", "patient dataset (.json or compiled store) - required")
	incompatPhylogeny = incompatCmd.Flags().StringP("phylogeny", "p", "", "phylogeny result (JSON) - required")
	incompatStyle = incompatCmd.Flags().StringP("styleFile", "s", "", "YAML file with style overrides")
	incompatOut = incompatCmd.Flags().StringP("out", "o", "./incompatible-table", "basename for the output files (.png and .pdf are added)")
	incompatBundle = incompatCmd.Flags().Bool("bundle", false, "collect the plots into a .tar.gz archive")
	incompatCmd.MarkFlagRequired("patient")
	incompatCmd.MarkFlagRequired("phylogeny")
	RootCmd.AddCommand(incompatCmd)
}

// a function to check user supplied parameters
func incompatParamCheck() error {
	if err := misc.CheckFile(*incompatPatient); err != nil {
		return err
	}
	if err := misc.CheckFile(*incompatPhylogeny); err != nil {
		return err
	}
	if *incompatStyle != "" {
		return misc.CheckFile(*incompatStyle)
	}
	return nil
}

/*
  The main function for the incompat command
*/
func runIncompat() {
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	logFH := misc.StartLogging(*logFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	log.Printf("this is treeomics (version %s)", version.GetVersion())
	log.Printf("starting the incompat subcommand")
	// check the supplied parameters
	misc.ErrorCheck(incompatParamCheck())
	log.Printf("\tpatient dataset: %v", *incompatPatient)
	log.Printf("\tphylogeny result: %v", *incompatPhylogeny)
	// load the patient dataset
	patient, err := mutdata.LoadPatient(*incompatPatient)
	misc.ErrorCheck(err)
	// load the phylogeny result and select the displayed mutations
	phylogeny, err := table.LoadPhylogenyResult(*incompatPhylogeny)
	misc.ErrorCheck(err)
	displayed, err := phylogeny.DisplayedMutations(patient.Data)
	if err != nil {
		// an unsupported result category is a graceful skip, not a failure
		if errors.Is(err, table.ErrUnsupportedPhylogeny) {
			log.Printf("WARNING --> %v", err)
			log.Println("no table drawn")
			return
		}
		misc.ErrorCheck(err)
	}
	log.Printf("\tmutations with incompatible patterns: %d", len(displayed))
	// load the plot style
	style, err := loadStyle(*incompatStyle)
	misc.ErrorCheck(err)
	// lay out the dual intensity table with the classification error overlays
	log.Printf("composing the incompatible pattern table...")
	tab, err := table.Compose(patient, displayed, nil, style.DualGeometry(), phylogeny.Annotation)
	misc.ErrorCheck(err)
	// render the table with the VAF and coverage legends
	log.Printf("rendering...")
	misc.ErrorCheck(render.Dual(tab, style, *incompatOut))
	log.Printf("\tsaved: %v.png", *incompatOut)
	log.Printf("\tsaved: %v.pdf", *incompatOut)
	// bundle the plots if requested
	if *incompatBundle == true {
		misc.ErrorCheck(bundlePlots(*incompatOut))
	}
	log.Println("finished")
}
