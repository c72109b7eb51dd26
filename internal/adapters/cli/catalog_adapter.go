// Package cli contains thin adapters that translate command-line actions into
// CatalogService calls and render the results.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/example/hostgen/internal/adapters/jsonfile"
	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/models"
	"github.com/example/hostgen/internal/ports/primary"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func okMark() string   { return color.New(color.FgGreen).Sprint("✓") }
func warnMark() string { return color.New(color.FgYellow).Sprint("!") }
func failMark() string { return color.New(color.FgRed).Sprint("✗") }

// CatalogAdapter is a thin adapter that translates CLI operations to CatalogService calls.
// It depends only on the CatalogService interface, enabling easy testing with mocks.
type CatalogAdapter struct {
	service primary.CatalogService
	out     io.Writer
}

// NewCatalogAdapter creates a new CatalogAdapter with the given service.
func NewCatalogAdapter(service primary.CatalogService, out io.Writer) *CatalogAdapter {
	return &CatalogAdapter{
		service: service,
		out:     out,
	}
}

// AddEntry registers a category entry and reports it.
func (a *CatalogAdapter) AddEntry(ctx context.Context, category models.Category, name, code string) (*primary.CategoryEntry, error) {
	entry, err := a.service.AddCategoryEntry(ctx, primary.AddCategoryEntryRequest{
		Category: category,
		Name:     name,
		Code:     code,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "%s %s %s registered with code %s\n", okMark(), categoryLabel(category), entry.Name, entry.Code)
	if entry.Replaced != "" && entry.Replaced != entry.Code {
		fmt.Fprintf(a.out, "  %s code changed: %s → %s\n", warnMark(), entry.Replaced, entry.Code)
	}
	return entry, nil
}

// ListCategory prints the entries of a category as a table.
func (a *CatalogAdapter) ListCategory(ctx context.Context, category models.Category) ([]*primary.CategoryEntry, error) {
	entries, err := a.service.ListCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entries: %w", category, err)
	}

	if len(entries) == 0 {
		fmt.Fprintf(a.out, "No %s registered yet.\n", category)
		return entries, nil
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Code, e.Name}
	}
	if err := renderTable(a.out, []string{"Code", "Name"}, rows); err != nil {
		return nil, err
	}
	return entries, nil
}

// Resolve prints the code registered for a name. An unknown name is
// reported as a NotFoundError.
func (a *CatalogAdapter) Resolve(ctx context.Context, category models.Category, name string) (*primary.Resolution, error) {
	res, err := a.service.ResolveCategory(ctx, category, name)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return res, hosterrors.NewNotFoundError(string(category), res.Name)
	}

	fmt.Fprintf(a.out, "%s %s → %s\n", categoryLabel(category), res.Name, res.Code)
	return res, nil
}

// Generate creates a hostname and prints it.
func (a *CatalogAdapter) Generate(ctx context.Context, req primary.GenerateHostnameRequest) (*primary.GenerateHostnameResponse, error) {
	resp, err := a.service.GenerateHostname(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "%s Hostname generated: %s\n", okMark(), resp.Hostname)
	return resp, nil
}

// Delete removes a hostname from the registry.
func (a *CatalogAdapter) Delete(ctx context.Context, hostname string) (*primary.DeleteHostnameResponse, error) {
	resp, err := a.service.DeleteHostname(ctx, hostname)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "%s Hostname %s deleted (sector %s, number %s)\n", okMark(), resp.Hostname, resp.Sector, resp.Number)
	return resp, nil
}

// Sectors prints every sector with its code and machine count.
func (a *CatalogAdapter) Sectors(ctx context.Context) ([]*primary.SectorSummary, error) {
	sectors, err := a.service.ListSectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}

	if len(sectors) == 0 {
		fmt.Fprintln(a.out, "No sectors with machines yet.")
		return sectors, nil
	}

	rows := make([][]string, len(sectors))
	for i, s := range sectors {
		code := s.Code
		if code == "" {
			code = "-"
		}
		rows[i] = []string{s.Sector, code, strconv.Itoa(s.Machines)}
	}
	err = renderTable(a.out, []string{"Sector", "Code", "Machines"}, rows,
		tw.AlignLeft, tw.AlignLeft, tw.AlignRight)
	if err != nil {
		return nil, err
	}
	return sectors, nil
}

// Machines prints the hostnames of a sector grouped by code prefix.
func (a *CatalogAdapter) Machines(ctx context.Context, sector string) ([]*primary.MachineGroup, error) {
	groups, err := a.service.ListMachines(ctx, sector)
	if err != nil {
		return nil, err
	}

	if len(groups) == 0 {
		fmt.Fprintf(a.out, "Sector %s has no machines.\n", sector)
		return groups, nil
	}

	for _, g := range groups {
		prefix := g.Prefix
		if prefix == "" {
			prefix = "(unrecognized)"
		}
		fmt.Fprintf(a.out, "%s (%d)\n", color.New(color.Bold).Sprint(prefix), len(g.Hostnames))
		for _, h := range g.Hostnames {
			fmt.Fprintf(a.out, "  %s\n", h)
		}
	}
	return groups, nil
}

// Export writes the whole catalog document in the given format.
func (a *CatalogAdapter) Export(ctx context.Context, format string) error {
	c, err := a.service.Snapshot(ctx)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON, "":
		data, err = jsonfile.Encode(c)
	case FormatYAML:
		data, err = yaml.Marshal(c)
	default:
		return hosterrors.NewInvalidInputError("format", format, "want json or yaml")
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog as %s: %w", format, err)
	}

	if _, err := a.out.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(a.out)
	}
	return nil
}

// Fail prints a user-facing error line.
func (a *CatalogAdapter) Fail(err error) {
	fmt.Fprintf(a.out, "%s %s\n", failMark(), Describe(err))
}

// Describe turns an error into the message shown to the user. Domain errors
// already read as sentences; only storage failures get a label.
func Describe(err error) string {
	if hosterrors.IsStorage(err) {
		return "Storage error: " + err.Error()
	}
	return err.Error()
}

func categoryLabel(category models.Category) string {
	return cases.Title(language.English).String(string(category))
}
