package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Matey2010/ultimate-form/pkg/form"
	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/openapi"
	"github.com/Matey2010/ultimate-form/pkg/render"
	"github.com/Matey2010/ultimate-form/pkg/renderers/html"
	"github.com/Matey2010/ultimate-form/pkg/renderers/tui"
	"github.com/Matey2010/ultimate-form/pkg/schema"
)

func main() {
	schemaPath := flag.String("schema", "", "form definition path (JSON or YAML)")
	openapiPath := flag.String("openapi", "", "OpenAPI document path")
	operation := flag.String("operation", "", "operation ID when using -openapi")
	mode := flag.String("mode", "tui", "output mode: tui or html")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	frm, err := buildForm(ctx, *schemaPath, *openapiPath, *operation)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	var out []byte
	switch *mode {
	case "tui":
		out, err = tui.New().Render(ctx, frm, render.Options{})
	case "html":
		var renderer *html.Renderer
		renderer, err = html.New()
		if err == nil {
			out, err = renderer.Render(ctx, frm, render.Options{})
		}
	default:
		log.Fatalf("Unknown mode: %q", *mode)
	}
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func buildForm(ctx context.Context, schemaPath, openapiPath, operation string) (*form.Form, error) {
	switch {
	case schemaPath != "":
		def, err := schema.LoadFile(schemaPath)
		if err != nil {
			return nil, err
		}
		return def.Form()
	case openapiPath != "":
		if operation == "" {
			return nil, fmt.Errorf("missing -operation for OpenAPI source")
		}
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, err
		}
		var fields []model.Field
		fields, err = openapi.New(openapi.Options{}).FieldsFromDocument(ctx, raw, operation)
		if err != nil {
			return nil, err
		}
		return form.New(fields)
	default:
		return nil, fmt.Errorf("either -schema or -openapi is required")
	}
}
