package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"doccatalog/internal/model"
	"doccatalog/internal/repository"
	"doccatalog/internal/service"
)

// ErrInvalidNumber is returned when a document number is not an integer.
var ErrInvalidNumber = errors.New("document number must be an integer")

func (a *app) newMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive document menu",
		Args:  cobra.NoArgs,
		RunE:  a.runMenu,
	}
}

func (a *app) runMenu(cmd *cobra.Command, _ []string) error {
	m := &menu{
		svc: a.catalog,
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
	return m.run(cmd.Context())
}

// menu is the interactive console loop. It exits on "3" or end of input.
type menu struct {
	svc service.CatalogService
	in  *bufio.Reader
	out io.Writer
}

func (m *menu) run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nDocument manager:")
		fmt.Fprintln(m.out, "1. Show all documents")
		fmt.Fprintln(m.out, "2. Show a document")
		fmt.Fprintln(m.out, "3. Exit")
		fmt.Fprint(m.out, "Choose an action: ")

		choice, ok := m.readLine()
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			if err := m.showAll(ctx); err != nil {
				return err
			}
		case "2":
			fmt.Fprint(m.out, "Enter document number: ")
			input, ok := m.readLine()
			if !ok {
				return nil
			}
			if err := m.showOne(ctx, input); err != nil {
				return err
			}
		case "3":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Try again.")
		}
	}
}

// readLine returns the next trimmed line; ok is false once input is exhausted.
func (m *menu) readLine() (string, bool) {
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (m *menu) showAll(ctx context.Context) error {
	res, err := m.svc.List(ctx)
	if err != nil {
		return err
	}
	writeListing(m.out, res.Items)
	return nil
}

func (m *menu) showOne(ctx context.Context, input string) error {
	number, err := parseNumber(input)
	if err != nil {
		fmt.Fprintln(m.out, "Input error! Enter a valid number.")
		return nil
	}
	entry, err := m.svc.Get(ctx, number)
	switch {
	case errors.Is(err, repository.ErrOutOfRange):
		fmt.Fprintln(m.out, "Invalid document number! Try again.")
		return nil
	case err != nil:
		return err
	}
	writeEntry(m.out, *entry)
	return nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}

func writeListing(w io.Writer, entries []model.Entry) {
	fmt.Fprintln(w, "\nAll documents:")
	for _, e := range entries {
		fmt.Fprintf(w, "\nDocument #%d\n%s\n", e.Number, e.Description)
	}
}

func writeEntry(w io.Writer, e model.Entry) {
	fmt.Fprintf(w, "\nDocument #%d info\n%s\n", e.Number, e.Description)
}
