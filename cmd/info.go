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
	"os"

	"github.com/nalutools/exomesh/exodus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [mesh file]",
	Short: "Summarize an Exodus-II mesh file",
	Long: `
Prints dimensionality, node and element counts, the element block and side
set inventories and the coordinate bounding box of a mesh file.

exomesh info mesh.exo`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose := viper.GetBool("verbose")
		if err := meshInfo(args[0], verbose); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func meshInfo(filename string, verbose bool) error {
	if verbose {
		fmt.Printf("Reading Exodus-II mesh file named: %s\n", filename)
	}
	msh, err := exodus.Open(filename)
	if err != nil {
		return err
	}
	defer msh.Close()

	fmt.Printf("Mesh: %s\n", msh.Path())
	fmt.Printf("%d space dimensions\n", msh.NDim)
	fmt.Printf("Nv = %d, K = %d\n", msh.NumNodes, msh.NumElements)

	fmt.Printf("%d element blocks:\n", msh.NumBlocks())
	bi := msh.Index()
	for i, name := range msh.Blocks() {
		fmt.Printf("  [%d] %s: %d elements, global ids %d-%d\n",
			i+1, name, bi.ElementCount(i+1),
			bi.StartOffset(i+1)+1, bi.StartOffset(i+1)+bi.ElementCount(i+1))
	}
	fmt.Printf("%d side sets:\n", msh.NumSideSets())
	for i, name := range msh.SideSets() {
		fmt.Printf("  [%d] %s\n", i+1, name)
	}

	xco, err := msh.X()
	if err != nil {
		return err
	}
	yco, err := msh.Y()
	if err != nil {
		return err
	}
	switch msh.NDim {
	case 2:
		fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\n",
			xco.Min(), xco.Max(), yco.Min(), yco.Max())
	case 3:
		zco, err := msh.Z()
		if err != nil {
			return err
		}
		fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
			xco.Min(), xco.Max(), yco.Min(), yco.Max(), zco.Min(), zco.Max())
	}
	return nil
}
