package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	formbuilder "github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/field"
	"github.com/goliatone/go-formbuilder/pkg/importer"
	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/richtext"
)

func main() {
	seedPath := flag.String("seed", "", "YAML seed document with initial fields")
	importSource := flag.String("import", "", "OpenAPI document path or URL to import fields from")
	operationID := flag.String("operation", "", "operation ID to import (with -import)")
	output := flag.String("output", "", "output file for the final field list (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	var initial []field.Field

	if *seedPath != "" {
		fields, err := loadSeed(*seedPath)
		if err != nil {
			log.Fatalf("Failed to load seed: %v", err)
		}
		initial = append(initial, fields...)
	}

	if *importSource != "" {
		fields, err := importFields(ctx, *importSource, *operationID)
		if err != nil {
			log.Fatalf("Failed to import fields: %v", err)
		}
		initial = append(initial, fields...)
	}

	collection := formbuilder.NewCollection(builder.WithFields(initial))

	driver := prompt.NewSurveyDriver()
	if err := runBuilder(ctx, driver, collection); err != nil {
		if errors.Is(err, prompt.ErrInterrupted) {
			os.Exit(130)
		}
		log.Fatalf("Builder failed: %v", err)
	}

	payload, err := json.MarshalIndent(collection.Records(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode fields: %v", err)
	}
	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return
	}
	fmt.Println(string(payload))
}

func loadSeed(path string) ([]field.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var records []field.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	// Seed documents get fresh identity; ids in the file are ignored so two
	// runs never share them.
	for i := range records {
		records[i].ID = field.NewID()
		for j := range records[i].Options {
			records[i].Options[j].ID = field.NewID()
		}
	}
	fields, err := field.DecodeAll(records)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return fields, nil
}

func importFields(ctx context.Context, source, operationID string) ([]field.Field, error) {
	src := parseSource(source)
	if src == nil {
		return nil, fmt.Errorf("invalid source %q", source)
	}
	imp := formbuilder.NewImporter(
		importer.WithLoader(formbuilder.NewLoader(pkgopenapi.WithHTTPFallback(30 * time.Second))),
	)
	if operationID == "" {
		ids, err := imp.OperationIDs(ctx, src)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing -operation; available: %s", strings.Join(ids, ", "))
	}
	return imp.Fields(ctx, src, operationID)
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}

func runBuilder(ctx context.Context, driver prompt.Driver, collection *builder.Collection) error {
	for {
		action, err := driver.Select(ctx, prompt.SelectConfig{
			Message: fmt.Sprintf("Form has %d field(s)", collection.Len()),
			Options: []string{"Add field", "Edit field", "Duplicate field", "Delete field", "Move field", "Show form", "Done"},
		})
		if err != nil {
			return err
		}
		switch action {
		case 0:
			if err := addField(ctx, driver, collection); err != nil {
				return err
			}
		case 1:
			if err := editField(ctx, driver, collection); err != nil {
				return err
			}
		case 2:
			if id, err := pickField(ctx, driver, collection, "Duplicate which field?"); err != nil {
				return err
			} else if id != "" {
				collection.Duplicate(id)
			}
		case 3:
			if id, err := pickField(ctx, driver, collection, "Delete which field?"); err != nil {
				return err
			} else if id != "" {
				collection.Delete(id)
			}
		case 4:
			if err := moveField(ctx, driver, collection); err != nil {
				return err
			}
		case 5:
			payload, err := json.MarshalIndent(collection.Records(), "", "  ")
			if err != nil {
				return err
			}
			if err := driver.Info(ctx, string(payload)); err != nil {
				return err
			}
		case 6:
			return nil
		}
	}
}

func addField(ctx context.Context, driver prompt.Driver, collection *builder.Collection) error {
	types := field.Types()
	labels := make([]string, 0, len(types))
	for _, t := range types {
		labels = append(labels, string(t))
	}
	idx, err := driver.Select(ctx, prompt.SelectConfig{Message: "Field type", Options: labels})
	if err != nil {
		return err
	}
	list := collection.Add(types[idx])
	last := list[len(list)-1]
	return editFieldByID(ctx, driver, collection, last.ID)
}

func pickField(ctx context.Context, driver prompt.Driver, collection *builder.Collection, message string) (string, error) {
	fields := collection.Fields()
	if len(fields) == 0 {
		return "", driver.Info(ctx, "No fields yet.")
	}
	labels := make([]string, 0, len(fields))
	for i, f := range fields {
		question := f.Question
		if question == "" {
			question = "(untitled)"
		}
		labels = append(labels, fmt.Sprintf("%d. [%s] %s", i+1, f.Type(), question))
	}
	idx, err := driver.Select(ctx, prompt.SelectConfig{Message: message, Options: labels, PageSize: 10})
	if err != nil {
		return "", err
	}
	return fields[idx].ID, nil
}

func moveField(ctx context.Context, driver prompt.Driver, collection *builder.Collection) error {
	id, err := pickField(ctx, driver, collection, "Move which field?")
	if err != nil || id == "" {
		return err
	}
	fields := collection.Fields()
	from := -1
	for i, f := range fields {
		if f.ID == id {
			from = i
			break
		}
	}
	positions := make([]string, 0, len(fields))
	for i := range fields {
		positions = append(positions, fmt.Sprintf("Position %d", i+1))
	}
	drag := collection.Drag()
	drag.PickUp(from)
	to, err := driver.Select(ctx, prompt.SelectConfig{Message: "Drop at", Options: positions, DefaultIndex: from})
	if err != nil {
		drag.Cancel()
		return err
	}
	collection.DropDragged(to)
	return nil
}

func editField(ctx context.Context, driver prompt.Driver, collection *builder.Collection) error {
	id, err := pickField(ctx, driver, collection, "Edit which field?")
	if err != nil || id == "" {
		return err
	}
	return editFieldByID(ctx, driver, collection, id)
}

func editFieldByID(ctx context.Context, driver prompt.Driver, collection *builder.Collection, id string) error {
	session, ok := collection.Edit(id)
	if !ok {
		return nil
	}
	for {
		f := session.Field()
		options := []string{
			fmt.Sprintf("Question: %q", f.Question),
			fmt.Sprintf("Type: %s", f.Type()),
			fmt.Sprintf("Required: %t", f.Required()),
			"Formatting",
			"Description",
			"Image URL",
			"Options",
			"Save",
			"Discard",
		}
		choice, err := driver.Select(ctx, prompt.SelectConfig{Message: "Edit field", Options: options, PageSize: 10})
		if err != nil {
			session.Discard()
			return err
		}
		switch choice {
		case 0:
			question, err := driver.Input(ctx, prompt.InputConfig{Message: "Question", Default: f.Question})
			if err != nil {
				session.Discard()
				return err
			}
			session.SetQuestion(question)
		case 1:
			types := field.Types()
			labels := make([]string, 0, len(types))
			for _, t := range types {
				labels = append(labels, string(t))
			}
			idx, err := driver.Select(ctx, prompt.SelectConfig{Message: "New type", Options: labels})
			if err != nil {
				session.Discard()
				return err
			}
			session.SetType(types[idx])
		case 2:
			session.ToggleRequired()
		case 3:
			if err := formatQuestion(ctx, driver, session); err != nil {
				session.Discard()
				return err
			}
		case 4:
			text, err := driver.Input(ctx, prompt.InputConfig{Message: "Description", Default: f.Description()})
			if err != nil {
				session.Discard()
				return err
			}
			session.SetDescription(text)
		case 5:
			url, err := driver.Input(ctx, prompt.InputConfig{Message: "Image URL", Default: f.ImageURL()})
			if err != nil {
				session.Discard()
				return err
			}
			session.SetImageURL(url)
		case 6:
			if err := editOptions(ctx, driver, session); err != nil {
				session.Discard()
				return err
			}
		case 7:
			collection.Commit(session)
			return nil
		case 8:
			session.Discard()
			return nil
		}
	}
}

func formatQuestion(ctx context.Context, driver prompt.Driver, session *builder.Session) error {
	commands := []richtext.Command{
		richtext.CommandBold,
		richtext.CommandItalic,
		richtext.CommandStrikethrough,
		richtext.CommandUnderline,
		richtext.CommandClearFormatting,
	}
	labels := make([]string, 0, len(commands))
	for _, cmd := range commands {
		labels = append(labels, string(cmd))
	}
	idx, err := driver.Select(ctx, prompt.SelectConfig{Message: "Formatting command", Options: labels})
	if err != nil {
		return err
	}
	session.Format(commands[idx])
	return nil
}

func editOptions(ctx context.Context, driver prompt.Driver, session *builder.Session) error {
	for {
		f := session.Field()
		opts := f.Options()
		labels := make([]string, 0, len(opts)+5)
		for i, opt := range opts {
			labels = append(labels, fmt.Sprintf("%d. %s", i+1, opt.Value))
		}
		labels = append(labels, "Add option", "Add \"Other\"", "Delete option", "Move option", "Back")
		base := len(opts)
		choice, err := driver.Select(ctx, prompt.SelectConfig{Message: "Options", Options: labels, PageSize: 12})
		if err != nil {
			return err
		}
		switch {
		case choice < base:
			value, err := driver.Input(ctx, prompt.InputConfig{Message: "Option value", Default: opts[choice].Value})
			if err != nil {
				return err
			}
			session.UpdateOption(opts[choice].ID, value)
		case choice == base:
			value, err := driver.Input(ctx, prompt.InputConfig{Message: "Option value (empty for placeholder)"})
			if err != nil {
				return err
			}
			session.AddOption(value)
		case choice == base+1:
			session.AddOtherOption()
		case choice == base+2:
			if len(opts) == 0 {
				continue
			}
			idx, err := pickOption(ctx, driver, opts, "Delete which option?")
			if err != nil {
				return err
			}
			session.DeleteOption(opts[idx].ID)
		case choice == base+3:
			if len(opts) < 2 {
				continue
			}
			from, err := pickOption(ctx, driver, opts, "Move which option?")
			if err != nil {
				return err
			}
			drag := session.OptionDrag()
			drag.PickUp(from)
			to, err := pickOption(ctx, driver, opts, "Drop at which position?")
			if err != nil {
				drag.Cancel()
				return err
			}
			session.DropOption(to)
		default:
			return nil
		}
	}
}

func pickOption(ctx context.Context, driver prompt.Driver, opts []field.Option, message string) (int, error) {
	labels := make([]string, 0, len(opts))
	for i, opt := range opts {
		labels = append(labels, fmt.Sprintf("%d. %s", i+1, opt.Value))
	}
	return driver.Select(ctx, prompt.SelectConfig{Message: message, Options: labels, PageSize: 12})
}
