// Package console is the interactive text menu around the chain queries.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ariefcatur/go-supermarket-chain/internal/market"
	"github.com/ariefcatur/go-supermarket-chain/internal/seed"
)

const menu = `Select one of the following options:
1) Top 5 best-selling products of the chain
2) Store with the highest revenue
3) Open stores
4) Total revenue
5) Quantity sold of a product in a store
6) Revenue of a product in a store
7) Total revenue of a store

0) Exit
`

type Console struct {
	In     io.Reader
	Out    io.Writer
	Chain  *market.Chain
	Logger *zap.Logger
}

type session struct {
	*Console
	ctx     context.Context
	tokens  <-chan string
	readErr error // set by the reader before tokens is closed
	log     *zap.Logger
}

type option func(s *session) error

var options = map[int]option{
	1: (*session).topProducts,
	2: (*session).topStore,
	3: (*session).openStores,
	4: (*session).totalRevenue,
	5: (*session).quantitySold,
	6: (*session).productRevenue,
	7: (*session).storeRevenue,
}

// Run shows the menu until the user picks 0, the input ends or ctx is done.
// Cancelling ctx also interrupts a pending read.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := &session{Console: c, ctx: ctx, log: c.Logger}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.read(c.In)

	s.println("Welcome!")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.print(menu)
		s.print("Enter the selected option: ")

		tok, ok := s.next()
		if !ok {
			return s.err()
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 || n > 7 {
			s.println("Please enter a valid option")
			continue
		}
		if n == 0 {
			s.println("Bye!")
			return nil
		}

		s.log.Debug("menu option selected", zap.Int("option", n))
		if err := options[n](s); err != nil {
			if errors.Is(err, io.EOF) {
				return s.err()
			}
			s.println("Please enter a whole number")
		}
	}
}

func (s *session) topProducts() error {
	if out := s.Chain.Top5ProductsByVolume(); out != "" {
		s.println(out)
	} else {
		s.println("No sales registered")
	}
	return nil
}

func (s *session) topStore() error {
	out, err := s.Chain.TopStoreByRevenue()
	if err != nil {
		s.diagnostic(err)
		return nil
	}
	s.println(out)
	return nil
}

func (s *session) openStores() error {
	s.print("Enter the time in H:MM format: ")
	raw, ok := s.next()
	if !ok {
		return io.EOF
	}
	at, err := seed.ParseClock(raw)
	if err != nil {
		s.diagnostic(err)
		return nil
	}
	s.print("Enter the day: ")
	day, ok := s.next()
	if !ok {
		return io.EOF
	}

	if out := s.Chain.OpenStoresList(at, NormalizeDay(day)); out != "" {
		s.println(out)
	} else {
		s.println("No stores open")
	}
	return nil
}

func (s *session) totalRevenue() error {
	total, err := s.Chain.TotalRevenue()
	if err != nil {
		s.diagnostic(err)
	}
	s.println("Total: $" + market.FormatAmount(total))
	return nil
}

func (s *session) quantitySold() error {
	storeID, productID, err := s.storeAndProduct()
	if err != nil {
		return err
	}
	q, err := s.Chain.QuantitySoldOf(storeID, productID)
	if err != nil {
		s.diagnostic(err)
	}
	s.println("Quantity: " + strconv.Itoa(q))
	return nil
}

func (s *session) productRevenue() error {
	storeID, productID, err := s.storeAndProduct()
	if err != nil {
		return err
	}
	r, err := s.Chain.RevenueOf(storeID, productID)
	if err != nil {
		s.diagnostic(err)
	}
	s.println("Amount: $" + market.FormatAmount(r))
	return nil
}

func (s *session) storeRevenue() error {
	storeID, err := s.readInt("Enter the store ID: ")
	if err != nil {
		return err
	}
	s.println("Amount: $" + market.FormatAmount(s.Chain.RevenueOfStore(storeID)))
	return nil
}

func (s *session) storeAndProduct() (int, int, error) {
	storeID, err := s.readInt("Enter the store ID: ")
	if err != nil {
		return 0, 0, err
	}
	productID, err := s.readInt("Enter the product ID: ")
	if err != nil {
		return 0, 0, err
	}
	return storeID, productID, nil
}

func (s *session) readInt(prompt string) (int, error) {
	s.print(prompt)
	tok, ok := s.next()
	if !ok {
		return 0, io.EOF
	}
	return strconv.Atoi(tok)
}

// read feeds whitespace separated tokens from in until it ends or the
// session is done.
func (s *session) read(in io.Reader) {
	tokens := make(chan string)
	s.tokens = tokens
	go func() {
		defer close(tokens)
		sc := bufio.NewScanner(in)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			select {
			case tokens <- sc.Text():
			case <-s.ctx.Done():
				return
			}
		}
		s.readErr = sc.Err()
	}()
}

func (s *session) next() (string, bool) {
	select {
	case <-s.ctx.Done():
		return "", false
	case tok, ok := <-s.tokens:
		return tok, ok
	}
}

// err is the reason input stopped: cancellation first, then a read failure.
// EOF is nil.
func (s *session) err() error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	return s.readErr
}

func (s *session) diagnostic(err error) {
	s.log.Info("query diagnostic", zap.Error(err))
	s.println("Error: " + err.Error())
}

func (s *session) print(v string)   { _, _ = io.WriteString(s.Out, v) }
func (s *session) println(v string) { _, _ = fmt.Fprintln(s.Out, v) }

// NormalizeDay upper-cases the first letter of a day name typed by the user,
// so "lunes" matches "Lunes". The rest of the word is kept as typed.
func NormalizeDay(day string) string {
	return cases.Title(language.Spanish, cases.NoLower).String(strings.TrimSpace(day))
}
