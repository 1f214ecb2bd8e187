package agent

import (
	genai "github.com/google/generative-ai-go/genai"

	"tripwise/services/planner"
)

// Declarations converts the planner capability specs into the function
// declarations the Gemini API understands.
func Declarations(specs []planner.CapabilitySpec) []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(specs))
	for _, spec := range specs {
		decl := &genai.FunctionDeclaration{
			Name:        spec.Name,
			Description: spec.Description,
		}
		if len(spec.Params) > 0 {
			props := make(map[string]*genai.Schema, len(spec.Params))
			var required []string
			for _, p := range spec.Params {
				schema := &genai.Schema{
					Type:        schemaType(p.Type),
					Description: p.Description,
				}
				if p.Type == "array" {
					schema.Items = &genai.Schema{Type: schemaType(p.Items)}
				}
				props[p.Name] = schema
				if p.Required {
					required = append(required, p.Name)
				}
			}
			decl.Parameters = &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   required,
			}
		}
		decls = append(decls, decl)
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

func schemaType(t string) genai.Type {
	switch t {
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	default:
		return genai.TypeString
	}
}
