package tui_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Matey2010/ultimate-form/pkg/form"
	"github.com/Matey2010/ultimate-form/pkg/model"
	"github.com/Matey2010/ultimate-form/pkg/render"
	"github.com/Matey2010/ultimate-form/pkg/renderers/tui"
)

// scriptedDriver replays canned answers and records the prompts it served.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int

	prompts []string
	notices []string
	err     error
}

func (d *scriptedDriver) nextInput() string {
	if len(d.inputs) == 0 {
		return ""
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	return d.nextInput(), d.err
}

func (d *scriptedDriver) Password(_ context.Context, cfg tui.InputConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	return d.nextInput(), d.err
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.confirms) == 0 {
		return false, d.err
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, d.err
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.selects) == 0 {
		return 0, d.err
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, d.err
}

func (d *scriptedDriver) TextArea(_ context.Context, cfg tui.TextAreaConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	return d.nextInput(), d.err
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.notices = append(d.notices, msg)
	return nil
}

func TestSessionCollectsValues(t *testing.T) {
	fields := []model.Field{
		{Name: "email", Type: model.TypeText, Label: "Email", Required: true, Validators: []model.Validator{
			{Kind: model.KindEmail, Message: "invalid email"},
		}},
		{Name: "color", Type: model.TypeSelect, Metadata: map[string]any{
			"options": []any{
				map[string]any{"value": "r", "label": "Red"},
				map[string]any{"value": "g", "label": "Green"},
			},
		}},
		{Name: "subscribe", Type: model.TypeCheckbox, Label: "Subscribe"},
	}
	frm, err := form.New(fields)
	if err != nil {
		t.Fatalf("form.New: %v", err)
	}

	driver := &scriptedDriver{
		inputs:   []string{"ada@example.com"},
		selects:  []int{1},
		confirms: []bool{true},
	}
	out, err := tui.New(tui.WithDriver(driver)).Render(context.Background(), frm, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var values map[string]any
	if err := json.Unmarshal(out, &values); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := map[string]any{
		"email":     "ada@example.com",
		"color":     "g",
		"subscribe": true,
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("collected values mismatch (-want +got):\n%s", diff)
	}

	// Required fields are marked in the prompt.
	if len(driver.prompts) == 0 || driver.prompts[0] != "Email *" {
		t.Fatalf("prompts = %v", driver.prompts)
	}
}

func TestSessionRepromptsOnFailure(t *testing.T) {
	fields := []model.Field{{
		Name: "email", Type: model.TypeText, Required: true,
		Validators: []model.Validator{
			{Kind: model.KindEmail, Message: "invalid email"},
		},
	}}
	frm, err := form.New(fields)
	if err != nil {
		t.Fatalf("form.New: %v", err)
	}

	driver := &scriptedDriver{inputs: []string{"nope", "still nope", "ada@example.com"}}
	_, err = tui.New(tui.WithDriver(driver)).Render(context.Background(), frm, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(driver.prompts) != 3 {
		t.Fatalf("prompted %d times, want 3", len(driver.prompts))
	}
	if len(driver.notices) != 2 {
		t.Fatalf("notices = %v, want two failure messages", driver.notices)
	}
	for _, notice := range driver.notices {
		if !strings.Contains(notice, "invalid email") {
			t.Fatalf("notice %q missing failure message", notice)
		}
	}
}

func TestSessionStillInvalidAfterMaxAttempts(t *testing.T) {
	fields := []model.Field{{
		Name: "email", Type: model.TypeText, Required: true,
		Validators: []model.Validator{
			{Kind: model.KindEmail, Message: "invalid email"},
		},
	}}
	frm, err := form.New(fields)
	if err != nil {
		t.Fatalf("form.New: %v", err)
	}

	driver := &scriptedDriver{inputs: []string{"a", "b"}}
	_, err = tui.New(tui.WithDriver(driver), tui.WithMaxAttempts(2)).Render(context.Background(), frm, render.Options{})
	if !errors.Is(err, tui.ErrStillInvalid) {
		t.Fatalf("err = %v, want ErrStillInvalid", err)
	}
}

func TestSessionSkipsDisabledFields(t *testing.T) {
	fields := []model.Field{
		{Name: "locked", Type: model.TypeText, Disabled: true, InitialValue: "frozen"},
		{Name: "open", Type: model.TypeText},
	}
	frm, err := form.New(fields)
	if err != nil {
		t.Fatalf("form.New: %v", err)
	}

	driver := &scriptedDriver{inputs: []string{"edited"}}
	out, err := tui.New(tui.WithDriver(driver)).Render(context.Background(), frm, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(driver.prompts) != 1 {
		t.Fatalf("prompts = %v, want only the enabled field", driver.prompts)
	}
	var values map[string]any
	if err := json.Unmarshal(out, &values); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if values["locked"] != "frozen" {
		t.Fatalf("disabled field value = %v", values["locked"])
	}
}

func TestSessionSubmits(t *testing.T) {
	submitted := false
	fields := []model.Field{{Name: "name", Type: model.TypeText}}
	frm, err := form.New(fields, form.WithHandler(func(context.Context, map[string]any) (any, error) {
		submitted = true
		return "ok", nil
	}))
	if err != nil {
		t.Fatalf("form.New: %v", err)
	}

	driver := &scriptedDriver{inputs: []string{"Ada"}}
	if _, err := tui.New(tui.WithDriver(driver), tui.WithSubmit(true)).Render(context.Background(), frm, render.Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !submitted {
		t.Fatal("handler not invoked")
	}
}

func TestSessionSubmitFailureSurfaces(t *testing.T) {
	fields := []model.Field{{Name: "name", Type: model.TypeText}}
	frm, err := form.New(fields, form.WithHandler(func(context.Context, map[string]any) (any, error) {
		return nil, errors.New("backend down")
	}))
	if err != nil {
		t.Fatalf("form.New: %v", err)
	}

	driver := &scriptedDriver{inputs: []string{"Ada"}}
	if _, err := tui.New(tui.WithDriver(driver), tui.WithSubmit(true)).Render(context.Background(), frm, render.Options{}); err == nil {
		t.Fatal("Render succeeded despite handler failure")
	}
}

func TestSessionAborted(t *testing.T) {
	fields := []model.Field{{Name: "name", Type: model.TypeText}}
	frm, err := form.New(fields)
	if err != nil {
		t.Fatalf("form.New: %v", err)
	}

	driver := &scriptedDriver{err: tui.ErrAborted}
	if _, err := tui.New(tui.WithDriver(driver)).Render(context.Background(), frm, render.Options{}); !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
}
