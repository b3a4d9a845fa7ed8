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

	"github.com/CuteBeaeast/treeomics/src/dendro"
	"github.com/CuteBeaeast/treeomics/src/misc"
	"github.com/CuteBeaeast/treeomics/src/mutdata"
	"github.com/CuteBeaeast/treeomics/src/render"
	"github.com/CuteBeaeast/treeomics/src/table"
	"github.com/CuteBeaeast/treeomics/src/version"
)

// the command line arguments
var (
	clusterPatient *string // the patient dataset (JSON or compiled store)
	clusterLinkage *string // the precomputed clustering linkage (JSON)
	clusterSubset  *string // comma separated mutation indices to display
	clusterStyle   *string // optional YAML style overrides
	clusterOut     *string // basename of the output files
	clusterBundle  *bool   // tar.gz the plots once drawn
)

// the cluster command (used by cobra)
var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Draw the mutation table fused with a precomputed sample clustering",
	Long: `Draw the mutation table fused with a precomputed sample clustering

The linkage file holds the agglomerative clustering of the samples as n-1 rows
of (left, right, distance, size); the implied leaf order replaces the declared
sample order for both the mutation sorting and the row placement.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCluster()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	clusterPatient = clusterCmd.Flags().StringP("patient", "i", "", "patient dataset (.json or compiled store) - required")
	clusterLinkage = clusterCmd.Flags().StringP("linkage", "l", "", "precomputed clustering linkage (JSON) - required")
	clusterSubset = clusterCmd.Flags().StringP("mutations", "m", "", "comma separated mutation indices to display (default: all)")
	clusterStyle = clusterCmd.Flags().StringP("styleFile", "s", "", "YAML file with style overrides")
	clusterOut = clusterCmd.Flags().StringP("out", "o", "./clustered-table", "basename for the output files (.png and .pdf are added)")
	clusterBundle = clusterCmd.Flags().Bool("bundle", false, "collect the plots into a .tar.gz archive")
	clusterCmd.MarkFlagRequired("patient")
	clusterCmd.MarkFlagRequired("linkage")
	RootCmd.AddCommand(clusterCmd)
}

// a function to check user supplied parameters
func clusterParamCheck() error {
	if err := misc.CheckFile(*clusterPatient); err != nil {
		return err
	}
	if err := misc.CheckFile(*clusterLinkage); err != nil {
		return err
	}
	if *clusterStyle != "" {
		return misc.CheckFile(*clusterStyle)
	}
	return nil
}

/*
  The main function for the cluster command
*/
func runCluster() {
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	logFH := misc.StartLogging(*logFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	log.Printf("this is treeomics (version %s)", version.GetVersion())
	log.Printf("starting the cluster subcommand")
	// check the supplied parameters
	misc.ErrorCheck(clusterParamCheck())
	log.Printf("\tpatient dataset: %v", *clusterPatient)
	log.Printf("\tlinkage: %v", *clusterLinkage)
	// load the patient dataset
	patient, err := mutdata.LoadPatient(*clusterPatient)
	misc.ErrorCheck(err)
	// load the linkage and derive the leaf order
	linkage, err := dendro.LoadLinkage(*clusterLinkage)
	misc.ErrorCheck(err)
	order, err := linkage.LeafOrder(patient.NumSamples())
	misc.ErrorCheck(err)
	log.Printf("\tleaf order: %v", order)
	// collect the displayed mutation subset
	displayed, err := parseMutationSubset(*clusterSubset, patient.NumMutations())
	misc.ErrorCheck(err)
	// load the plot style
	style, err := loadStyle(*clusterStyle)
	misc.ErrorCheck(err)
	// lay out the table in the dendrogram leaf order
	log.Printf("composing the clustered mutation table...")
	tab, err := table.Compose(patient, displayed, order, style.Geometry(), nil)
	misc.ErrorCheck(err)
	log.Printf("\tdisplayed mutations: %d", len(tab.Columns))
	// render the table with the dendrogram alongside
	log.Printf("rendering...")
	misc.ErrorCheck(render.Clustered(tab, linkage, style, *clusterOut))
	log.Printf("\tsaved: %v.png", *clusterOut)
	log.Printf("\tsaved: %v.pdf", *clusterOut)
	// bundle the plots if requested
	if *clusterBundle == true {
		misc.ErrorCheck(bundlePlots(*clusterOut))
	}
	log.Println("finished")
}
