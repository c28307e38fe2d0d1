// Package lookml parses LookML model files into a generic tree.
//
// The tree is made of three kinds of values: map[string]any for blocks,
// []any for lists and repeated blocks, and string for every scalar. It has
// the same shape that gopkg.in/yaml.v3 produces when decoding into an any,
// so callers can treat LookML, YAML and JSON model files uniformly.
//
// # Shape
//
// A named block such as
//
//	explore: orders {
//	  join: customers {
//	    sql_on: ${orders.customer_id} = ${customers.id} ;;
//	  }
//	}
//
// becomes
//
//	{"explores": [{"name": "orders", "joins": [{"name": "customers", "sql_on": "..."}]}]}
//
// Keys that may appear more than once (explore, join, view, include, ...) are
// always collected into a list under their plural form, even when they occur
// a single time. Other keys must be unique within their block.
//
// # Usage
//
//	tree, err := lookml.Parse(text)
//	if err != nil {
//	    var perr *lookml.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println(perr.Pos.Line, perr.Pos.Column)
//	    }
//	}
package lookml
