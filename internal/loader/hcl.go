package loader

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclModelFile is the part of an HCL model file the loader reads:
//
//	name = "ecommerce"
//
//	explore "orders" {
//	  join "customers" {
//	    relationship = "many_to_one"
//	  }
//	}
//
// Any other attributes or blocks are ignored.
type hclModelFile struct {
	Name     *string       `hcl:"name,optional"`
	Explores []*hclExplore `hcl:"explore,block"`
	Remain   hcl.Body      `hcl:",remain"`
}

type hclExplore struct {
	Name   string     `hcl:"name,label"`
	Joins  []*hclJoin `hcl:"join,block"`
	Remain hcl.Body   `hcl:",remain"`
}

type hclJoin struct {
	Name   string   `hcl:"name,label"`
	Remain hcl.Body `hcl:",remain"`
}

func parseHCL(path string, content []byte) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, &SyntaxError{Format: "HCL", Err: diags}
	}

	var parsed hclModelFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, &SyntaxError{Format: "HCL", Err: diags}
	}

	return parsed.tree(), nil
}

// tree converts the decoded file into the generic shape.
func (f *hclModelFile) tree() map[string]any {
	tree := make(map[string]any)
	if f.Name != nil {
		tree["name"] = *f.Name
	}
	if len(f.Explores) == 0 {
		return tree
	}

	explores := make([]any, 0, len(f.Explores))
	for _, e := range f.Explores {
		explore := map[string]any{"name": e.Name}
		if len(e.Joins) > 0 {
			joins := make([]any, 0, len(e.Joins))
			for _, j := range e.Joins {
				joins = append(joins, map[string]any{"name": j.Name})
			}
			explore["joins"] = joins
		}
		explores = append(explores, explore)
	}
	tree["explores"] = explores
	return tree
}
