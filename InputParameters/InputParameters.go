package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML extraction job file
type ExtractionParameters struct {
	Title           string   `yaml:"Title"`
	MeshFile        string   `yaml:"MeshFile"`
	Blocks          []string `yaml:"Blocks"`   // element block names to extract nodes for
	SideSets        []string `yaml:"SideSets"` // side set names to extract nodes for
	Flatten         bool     `yaml:"Flatten"`  // unique sorted node ids instead of per-element tables
	WithCoordinates bool     `yaml:"WithCoordinates"`
}

func (ep *ExtractionParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ep); err != nil {
		return err
	}
	if ep.MeshFile == "" {
		return fmt.Errorf("extraction job %q: no MeshFile given", ep.Title)
	}
	return nil
}

func (ep *ExtractionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ep.Title)
	fmt.Printf("[%s]\t\t= Mesh File\n", ep.MeshFile)
	fmt.Printf("%v\t\t= Blocks\n", ep.Blocks)
	fmt.Printf("%v\t\t= Side Sets\n", ep.SideSets)
	fmt.Printf("[%v]\t\t\t= Flatten\n", ep.Flatten)
	fmt.Printf("[%v]\t\t\t= With Coordinates\n", ep.WithCoordinates)
}
