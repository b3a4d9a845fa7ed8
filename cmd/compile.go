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

	"github.com/spf13/cobra"

	"github.com/CuteBeaeast/treeomics/src/misc"
	"github.com/CuteBeaeast/treeomics/src/mutdata"
	"github.com/CuteBeaeast/treeomics/src/version"
)

// the command line arguments
var (
	compileInput *string // the patient dataset (JSON)
	compileOut   *string // the compiled dataset store
)

// the compile command (used by cobra)
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Validate a patient JSON dataset and compile it to a binary store",
	Long:  `Validate a patient JSON dataset and compile it to a binary store`,
	Run: func(cmd *cobra.Command, args []string) {
		runCompile()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	compileInput = compileCmd.Flags().StringP("patient", "i", "", "patient dataset (.json) - required")
	compileOut = compileCmd.Flags().StringP("out", "o", "./patient.store", "filename for the compiled dataset")
	compileCmd.MarkFlagRequired("patient")
	RootCmd.AddCommand(compileCmd)
}

/*
  The main function for the compile command
*/
func runCompile() {
	// start logging
	logFH := misc.StartLogging(*logFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	log.Printf("this is treeomics (version %s)", version.GetVersion())
	log.Printf("starting the compile subcommand")
	// check the supplied parameters
	misc.ErrorCheck(misc.CheckFile(*compileInput))
	misc.ErrorCheck(misc.CheckExt(*compileInput, []string{"json"}))
	// load and validate the dataset
	patient, err := mutdata.LoadJSON(*compileInput)
	misc.ErrorCheck(err)
	log.Printf("\tpatient: %v", patient.Name)
	log.Printf("\tmutations: %d", patient.NumMutations())
	log.Printf("\tsamples: %d", patient.NumSamples())
	// save the store
	misc.ErrorCheck(patient.Dump(*compileOut))
	log.Printf("\tsaved: %v", *compileOut)
	log.Println("finished")
}
