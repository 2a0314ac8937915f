package openapi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/openapi"
)

const userDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "users", "version": "1.0.0"},
  "paths": {
    "/users": {
      "post": {
        "operationId": "createUser",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["email", "display_name"],
                "properties": {
                  "email": {
                    "type": "string",
                    "format": "email",
                    "description": "Primary contact address"
                  },
                  "display_name": {
                    "type": "string",
                    "minLength": 3,
                    "maxLength": 32
                  },
                  "age": {
                    "type": "integer",
                    "minimum": 13,
                    "maximum": 130
                  },
                  "role": {
                    "type": "string",
                    "enum": ["admin", "editor", "viewer"],
                    "default": "viewer"
                  },
                  "active": {
                    "type": "boolean",
                    "default": true
                  },
                  "website": {
                    "type": "string",
                    "format": "uri"
                  },
                  "joined": {
                    "type": "string",
                    "format": "date"
                  }
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    },
    "/ping": {
      "get": {
        "responses": {"200": {"description": "pong"}}
      }
    }
  }
}`

func loadUserFields(t *testing.T) map[string]model.Field {
	t.Helper()
	fields, err := openapi.New(openapi.Options{}).FieldsFromDocument(context.Background(), []byte(userDoc), "createUser")
	if err != nil {
		t.Fatalf("FieldsFromDocument: %v", err)
	}
	byName := make(map[string]model.Field, len(fields))
	for _, field := range fields {
		byName[field.Name] = field
	}
	return byName
}

func TestFieldsFromDocument(t *testing.T) {
	fields := loadUserFields(t)
	if len(fields) != 7 {
		t.Fatalf("got %d fields: %v", len(fields), fields)
	}

	email := fields["email"]
	if email.Type != model.TypeText || !email.Required {
		t.Fatalf("email = %+v", email)
	}
	if email.Metadata["help"] != "Primary contact address" {
		t.Fatalf("email metadata = %v", email.Metadata)
	}
	if len(email.Validators) != 1 || email.Validators[0].Kind != model.KindEmail {
		t.Fatalf("email validators = %+v", email.Validators)
	}

	active := fields["active"]
	if active.Type != model.TypeCheckbox {
		t.Fatalf("active type = %q", active.Type)
	}
	if active.InitialValue != true {
		t.Fatalf("active initial = %v", active.InitialValue)
	}

	website := fields["website"]
	if len(website.Validators) != 1 || website.Validators[0].Kind != model.KindURL {
		t.Fatalf("website validators = %+v", website.Validators)
	}

	joined := fields["joined"]
	if joined.Type != model.TypeDate {
		t.Fatalf("joined type = %q", joined.Type)
	}
}

func TestFieldsStringConstraints(t *testing.T) {
	fields := loadUserFields(t)
	name := fields["display_name"]

	if !name.Required {
		t.Fatal("display_name not required")
	}
	if name.Label != "Display name" {
		t.Fatalf("label = %q", name.Label)
	}

	kinds := make([]string, 0, len(name.Validators))
	for _, v := range name.Validators {
		kinds = append(kinds, v.Kind)
	}
	want := []string{model.KindMinLength, model.KindMaxLength}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("validator kinds mismatch (-want +got):\n%s", diff)
	}
	if got := name.Validators[0].Params["length"]; got != 3 {
		t.Fatalf("minLength param = %v", got)
	}
	if got := name.Validators[1].Params["length"]; got != 32 {
		t.Fatalf("maxLength param = %v", got)
	}
}

func TestFieldsNumericConstraints(t *testing.T) {
	fields := loadUserFields(t)
	age := fields["age"]

	if age.Type != model.TypeNumber {
		t.Fatalf("age type = %q", age.Type)
	}

	kinds := make([]string, 0, len(age.Validators))
	for _, v := range age.Validators {
		kinds = append(kinds, v.Kind)
	}
	want := []string{model.KindMin, model.KindMax, model.KindInteger}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("validator kinds mismatch (-want +got):\n%s", diff)
	}
	if got := age.Validators[0].Params["min"]; got != 13.0 {
		t.Fatalf("min param = %v", got)
	}
}

func TestFieldsEnum(t *testing.T) {
	fields := loadUserFields(t)
	role := fields["role"]

	if role.Type != model.TypeSelect {
		t.Fatalf("role type = %q", role.Type)
	}
	if role.InitialValue != "viewer" {
		t.Fatalf("role initial = %v", role.InitialValue)
	}

	options, ok := role.Metadata["options"].([]any)
	if !ok || len(options) != 3 {
		t.Fatalf("role options = %v", role.Metadata["options"])
	}

	last := role.Validators[len(role.Validators)-1]
	if last.Kind != model.KindOneOf {
		t.Fatalf("last validator = %+v", last)
	}
}

func TestOperationNotFound(t *testing.T) {
	_, err := openapi.New(openapi.Options{}).FieldsFromDocument(context.Background(), []byte(userDoc), "deleteUser")
	if !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("err = %v, want ErrOperationNotFound", err)
	}
}

func TestOperationWithoutRequestBody(t *testing.T) {
	_, err := openapi.New(openapi.Options{}).FieldsFromDocument(context.Background(), []byte(userDoc), "get:/ping")
	if !errors.Is(err, openapi.ErrNoRequestBody) {
		t.Fatalf("err = %v, want ErrNoRequestBody", err)
	}
}

func TestEmptyDocumentRejected(t *testing.T) {
	if _, err := openapi.New(openapi.Options{}).FieldsFromDocument(context.Background(), nil, "x"); err == nil {
		t.Fatal("empty payload succeeded")
	}
}
