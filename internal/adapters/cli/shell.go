package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/logging"
	"github.com/example/hostgen/internal/models"
	"github.com/example/hostgen/internal/ports/primary"
)

// Menu options.
const (
	optionQuery    = "1"
	optionCreate   = "2"
	optionDelete   = "3"
	optionSupplier = "4"
	optionSector   = "5"
	optionType     = "6"
	optionLocation = "7"
	optionExit     = "8"
)

var menuLines = []string{
	"1 - Query sectors",
	"2 - Create machine",
	"3 - Delete hostname",
	"4 - Add supplier",
	"5 - Add sector",
	"6 - Add type",
	"7 - Add location",
	"8 - Exit",
}

// Name and code prompts per category.
var entryPrompts = map[models.Category][2]string{
	models.CategorySupplier: {"Supplier name: ", "Supplier code: "},
	models.CategorySector:   {"Sector name: ", "Sector code (e.g. 01): "},
	models.CategoryType:     {"Type name (e.g. laptop/desktop): ", "Type code (e.g. L/D/S): "},
	models.CategoryLocation: {"Location name (e.g. factory/office): ", "Location code (e.g. 1/2): "},
}

// Shell runs the numbered interactive menu. Every action failure is reported
// and control returns to the menu; only an unreadable store at startup ends
// the session with an error.
type Shell struct {
	service primary.CatalogService
	adapter *CatalogAdapter
	in      *bufio.Reader
	out     io.Writer
}

// NewShell creates a Shell reading answers from in and writing to out.
func NewShell(service primary.CatalogService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		service: service,
		adapter: NewCatalogAdapter(service, out),
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run checks the store, then loops over the menu until the user exits or
// input ends.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.service.CheckStore(ctx); err != nil {
		return fmt.Errorf("cannot open catalog: %w", err)
	}

	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "######## MENU ########")
		for _, line := range menuLines {
			fmt.Fprintln(s.out, line)
		}

		choice, err := s.prompt("Choice: ")
		if err != nil {
			return s.finish(err)
		}
		if choice == optionExit {
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		if err := s.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return s.finish(err)
			}
			logging.FromContext(ctx).Debug().Err(err).Str("option", choice).Msg("Menu action failed")
			s.adapter.Fail(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func (s *Shell) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case optionQuery:
		return s.query(ctx)
	case optionCreate:
		return s.createMachine(ctx)
	case optionDelete:
		return s.deleteHostname(ctx)
	case optionSupplier:
		return s.addEntry(ctx, models.CategorySupplier)
	case optionSector:
		return s.addEntry(ctx, models.CategorySector)
	case optionType:
		return s.addEntry(ctx, models.CategoryType)
	case optionLocation:
		return s.addEntry(ctx, models.CategoryLocation)
	}
	return hosterrors.NewInvalidInputError("menu option", choice, "choose 1 to 8")
}

// query shows the sector summary, then optionally one sector's machines or
// one category's codes.
func (s *Shell) query(ctx context.Context) error {
	if _, err := s.adapter.Sectors(ctx); err != nil {
		return err
	}

	target, err := s.prompt("Sector to list, or supplier/type/sector/location for codes (Enter to return): ")
	if err != nil || target == "" {
		return err
	}

	if category, perr := models.ParseCategory(target); perr == nil {
		_, err = s.adapter.ListCategory(ctx, category)
		return err
	}
	_, err = s.adapter.Machines(ctx, target)
	return err
}

// createMachine collects the four names and an optional number, then
// generates. A name that does not resolve can be registered on the spot,
// after which generation is retried.
func (s *Shell) createMachine(ctx context.Context) error {
	var req primary.GenerateHostnameRequest
	fields := []struct {
		label string
		dst   *string
	}{
		{"Supplier: ", &req.Supplier},
		{"Machine type: ", &req.Type},
		{"Sector: ", &req.Sector},
		{"Location: ", &req.Location},
	}
	for _, f := range fields {
		v, err := s.prompt(f.label)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	number, err := s.promptNumber("Sequence number (Enter for next free): ")
	if err != nil {
		return err
	}
	req.Number = number

	// Each pass either succeeds, aborts, or registers one missing category.
	for range len(models.Categories) + 1 {
		_, err := s.adapter.Generate(ctx, req)
		if err == nil {
			return nil
		}

		var nf *hosterrors.NotFoundError
		if !errors.As(err, &nf) {
			return err
		}
		category, perr := models.ParseCategory(nf.Resource)
		if perr != nil {
			return err
		}

		question := fmt.Sprintf("%s %q is not registered. Register it now?", categoryLabel(category), nf.Name)
		ok, cerr := s.confirm(question)
		if cerr != nil {
			return cerr
		}
		if !ok {
			return err
		}

		code, perr := s.prompt(entryPrompts[category][1])
		if perr != nil {
			return perr
		}
		if _, err := s.adapter.AddEntry(ctx, category, nf.Name, code); err != nil {
			return err
		}
	}
	return fmt.Errorf("hostname generation did not converge")
}

func (s *Shell) deleteHostname(ctx context.Context) error {
	h, err := s.prompt("Hostname to delete: ")
	if err != nil {
		return err
	}
	_, err = s.adapter.Delete(ctx, h)
	return err
}

func (s *Shell) addEntry(ctx context.Context, category models.Category) error {
	prompts := entryPrompts[category]
	name, err := s.prompt(prompts[0])
	if err != nil {
		return err
	}
	code, err := s.prompt(prompts[1])
	if err != nil {
		return err
	}
	_, err = s.adapter.AddEntry(ctx, category, name, code)
	return err
}

// prompt prints label and reads one trimmed line. Input ending without a
// newline still yields its text; io.EOF is returned only when nothing is left.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptNumber reads an optional positive sequence number; blank means 0.
func (s *Shell) promptNumber(label string) (int, error) {
	v, err := s.prompt(label)
	if err != nil || v == "" {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, hosterrors.NewInvalidInputError("sequence number", v, "not a number")
	}
	if n <= 0 {
		return 0, hosterrors.NewNumberInUseError("", n)
	}
	return n, nil
}

// confirm asks a y/N question. Anything but y or yes is a no.
func (s *Shell) confirm(question string) (bool, error) {
	response, err := s.prompt(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	response = strings.ToLower(response)
	return response == "y" || response == "yes", nil
}
