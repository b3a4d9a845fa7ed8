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
	"log"
	"strconv"
	"strings"

	"github.com/mholt/archiver"
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
	tablePatient *string // the patient dataset (JSON or compiled store)
	tableSubset  *string // comma separated mutation indices to display
	tableStyle   *string // optional YAML style overrides
	tableOut     *string // basename of the output files
	tableBundle  *bool   // tar.gz the plots once drawn
)

// the table command (used by cobra)
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Draw the colour-encoded mutation table of a patient",
	Long:  `Draw the colour-encoded mutation table of a patient`,
	Run: func(cmd *cobra.Command, args []string) {
		runTable()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	tablePatient = tableCmd.Flags().StringP("patient", "i", "", "patient dataset (.json or compiled store) - required")
	tableSubset = tableCmd.Flags().StringP("mutations", "m", "", "comma separated mutation indices to display (default: all)")
	tableStyle = tableCmd.Flags().StringP("styleFile", "s", "", "YAML file with style overrides")
	tableOut = tableCmd.Flags().StringP("out", "o", "./mutation-table", "basename for the output files (.png and .pdf are added)")
	tableBundle = tableCmd.Flags().Bool("bundle", false, "collect the plots into a .tar.gz archive")
	tableCmd.MarkFlagRequired("patient")
	RootCmd.AddCommand(tableCmd)
}

// a function to check user supplied parameters
func tableParamCheck() error {
	if err := misc.CheckFile(*tablePatient); err != nil {
		return err
	}
	if *tableStyle != "" {
		return misc.CheckFile(*tableStyle)
	}
	return nil
}

/*
  The main function for the table command
*/
func runTable() {
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	logFH := misc.StartLogging(*logFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	log.Printf("this is treeomics (version %s)", version.GetVersion())
	log.Printf("starting the table subcommand")
	// check the supplied parameters
	misc.ErrorCheck(tableParamCheck())
	log.Printf("\tpatient dataset: %v", *tablePatient)
	// load the patient dataset
	patient, err := mutdata.LoadPatient(*tablePatient)
	misc.ErrorCheck(err)
	log.Printf("\tmutations: %d", patient.NumMutations())
	log.Printf("\tsamples: %d", patient.NumSamples())
	// collect the displayed mutation subset
	displayed, err := parseMutationSubset(*tableSubset, patient.NumMutations())
	misc.ErrorCheck(err)
	// load the plot style
	style, err := loadStyle(*tableStyle)
	misc.ErrorCheck(err)
	// lay out the table in the declared sample order
	log.Printf("composing the mutation table...")
	tab, err := table.Compose(patient, displayed, nil, style.Geometry(), nil)
	misc.ErrorCheck(err)
	log.Printf("\tdisplayed mutations: %d", len(tab.Columns))
	// render the table
	log.Printf("rendering...")
	misc.ErrorCheck(render.Plain(tab, style, *tableOut))
	log.Printf("\tsaved: %v.png", *tableOut)
	log.Printf("\tsaved: %v.pdf", *tableOut)
	// bundle the plots if requested
	if *tableBundle == true {
		misc.ErrorCheck(bundlePlots(*tableOut))
	}
	log.Println("finished")
}

// parseMutationSubset converts the --mutations flag to the displayed subset
// (nil means all mutations)
func parseMutationSubset(flagVal string, numMutations int) ([]int, error) {
	if flagVal == "" {
		return nil, nil
	}
	displayed := []int{}
	for _, field := range strings.Split(flagVal, ",") {
		mutIdx, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("could not parse mutation index: %v", field)
		}
		if mutIdx < 0 || mutIdx >= numMutations {
			return nil, fmt.Errorf("mutation index out of range: %d (patient has %d mutations)", mutIdx, numMutations)
		}
		displayed = append(displayed, mutIdx)
	}
	return displayed, nil
}

// loadStyle returns the default style or the YAML overrides
func loadStyle(styleFile string) (render.Style, error) {
	if styleFile == "" {
		return render.DefaultStyle(), nil
	}
	return render.LoadStyle(styleFile)
}

// bundlePlots collects the rendered files into a tar.gz next to them
func bundlePlots(basename string) error {
	files := []string{basename + ".png", basename + ".pdf"}
	if err := archiver.Archive(files, basename+".tar.gz"); err != nil {
		return fmt.Errorf("could not bundle the plots: %v", err)
	}
	log.Printf("\tbundled the plots: %v.tar.gz", basename)
	return nil
}
