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
)

// surfacesCmd represents the surfaces command
var surfacesCmd = &cobra.Command{
	Use:   "surfaces [mesh file]",
	Short: "List side sets or print the node ids lying on one",
	Long: `
Without --name, lists the side sets of the mesh. With --name, prints the
unique node ids on that side set, or one row of node ids per referenced
element side with --table.

exomesh surfaces mesh.exo --name wall`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		table, _ := cmd.Flags().GetBool("table")
		if err := sideSetNodes(args[0], name, table); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(surfacesCmd)
	surfacesCmd.Flags().StringP("name", "n", "", "side set to print node ids for")
	surfacesCmd.Flags().BoolP("table", "t", false, "print one row per element side instead of unique ids")
}

func sideSetNodes(filename, name string, table bool) error {
	msh, err := exodus.Open(filename)
	if err != nil {
		return err
	}
	defer msh.Close()

	if name == "" {
		for _, ss := range msh.SideSets() {
			fmt.Println(ss)
		}
		return nil
	}
	if table {
		R, err := msh.SideSetNodeTable(name)
		if err != nil {
			return err
		}
		printNodeTable(R)
		return nil
	}
	nodes, err := msh.SideSetNodes(name)
	if err != nil {
		return err
	}
	printNodeIDs(nodes)
	return nil
}
