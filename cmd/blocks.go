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
	"github.com/nalutools/exomesh/utils"
	"github.com/spf13/cobra"
)

// blocksCmd represents the blocks command
var blocksCmd = &cobra.Command{
	Use:   "blocks [mesh file]",
	Short: "List element blocks or print a block's node ids",
	Long: `
Without --name, lists the element blocks of the mesh. With --name, prints
the unique node ids of that block, or the full element connectivity table
with --table.

exomesh blocks mesh.exo --name fluid`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		table, _ := cmd.Flags().GetBool("table")
		if err := blockNodes(args[0], name, table); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(blocksCmd)
	blocksCmd.Flags().StringP("name", "n", "", "element block to print node ids for")
	blocksCmd.Flags().BoolP("table", "t", false, "print the per-element connectivity table instead of unique ids")
}

func blockNodes(filename, name string, table bool) error {
	msh, err := exodus.Open(filename)
	if err != nil {
		return err
	}
	defer msh.Close()

	if name == "" {
		for _, blk := range msh.Blocks() {
			fmt.Println(blk)
		}
		return nil
	}
	if table {
		EToV, err := msh.BlockNodeTable(name)
		if err != nil {
			return err
		}
		printNodeTable(EToV)
		return nil
	}
	nodes, err := msh.BlockNodes(name)
	if err != nil {
		return err
	}
	printNodeIDs(nodes)
	return nil
}

func printNodeIDs(I utils.Index) {
	for _, id := range I {
		fmt.Println(id)
	}
}

func printNodeTable(R utils.Matrix) {
	if R.IsEmpty() {
		return
	}
	nr, nc := R.Dims()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Print(int(R.At(i, j)))
		}
		fmt.Println()
	}
}
