/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/nalutools/exomesh/InputParameters"
	"github.com/nalutools/exomesh/exodus"
	"github.com/nalutools/exomesh/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [job file]",
	Short: "Run a YAML-described node extraction job",
	Long: `
Reads a YAML job file naming a mesh and the blocks and side sets whose node
ids (and optionally coordinates) to extract.

exomesh extract job.yaml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose := viper.GetBool("verbose")
		if err := runExtraction(args[0], verbose); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtraction(jobFile string, verbose bool) error {
	data, err := ioutil.ReadFile(jobFile)
	if err != nil {
		return err
	}
	var ep InputParameters.ExtractionParameters
	if err = ep.Parse(data); err != nil {
		return err
	}
	if verbose {
		ep.Print()
	}

	msh, err := exodus.Open(ep.MeshFile)
	if err != nil {
		return err
	}
	defer msh.Close()

	for _, blk := range ep.Blocks {
		fmt.Printf("block %s:\n", blk)
		if ep.Flatten {
			nodes, err := msh.BlockNodes(blk)
			if err != nil {
				return err
			}
			if err = printNodes(msh, nodes, ep.WithCoordinates); err != nil {
				return err
			}
		} else {
			EToV, err := msh.BlockNodeTable(blk)
			if err != nil {
				return err
			}
			printNodeTable(EToV)
		}
	}
	for _, ss := range ep.SideSets {
		fmt.Printf("side set %s:\n", ss)
		if ep.Flatten {
			nodes, err := msh.SideSetNodes(ss)
			if err != nil {
				return err
			}
			if err = printNodes(msh, nodes, ep.WithCoordinates); err != nil {
				return err
			}
		} else {
			R, err := msh.SideSetNodeTable(ss)
			if err != nil {
				return err
			}
			printNodeTable(R)
		}
	}
	return nil
}

// printNodes prints flattened node ids, with their coordinates alongside
// when requested.
func printNodes(msh *exodus.Mesh, nodes utils.Index, withCoords bool) error {
	if !withCoords {
		printNodeIDs(nodes)
		return nil
	}
	R, err := msh.Coordinates(nodes)
	if err != nil {
		return err
	}
	_, nc := R.Dims()
	for i, id := range nodes {
		fmt.Printf("%d", id)
		for j := 0; j < nc; j++ {
			fmt.Printf(" %10.6f", R.At(i, j))
		}
		fmt.Println()
	}
	return nil
}
