package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"

	"github.com/caprest/clearance-catalog/internal/browse"
	"github.com/caprest/clearance-catalog/internal/cart"
	"github.com/caprest/clearance-catalog/internal/catalog"
	"github.com/caprest/clearance-catalog/internal/view"
	"github.com/caprest/clearance-catalog/pkg/kv"
)

// RunBrowse drives a browse session from a line-oriented terminal REPL.
// It exists mostly as a workbench for the interaction engine: every
// session operation is reachable from a command.
func RunBrowse(ctx context.Context, lg *zap.Logger, cfg BrowseConfig, in io.Reader, out io.Writer) error {
	store, err := catalog.LoadFile(cfg.Input)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}

	var slot kv.Slot = kv.NewMemorySlot()
	if cfg.CartPath != "" {
		slot = kv.NewFileSlot(cfg.CartPath)
	}

	crt := cart.New(ctx, store, slot, cart.WithLogger(lg))
	eng := view.NewEngine(store, cfg.PageSize)
	session := browse.NewSession(store, eng, crt, cfg.Recipient)

	fmt.Fprintf(out, "Loaded %d products. Type 'help' for commands.\n", store.Len())
	printGallery(out, session.Gallery())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "quit", "exit", "q":
			return scanner.Err()
		case "help", "h":
			printHelp(out)
		case "search", "s":
			session.Search(arg)
			printGallery(out, session.Gallery())
		case "page":
			if n, err := strconv.Atoi(arg); err == nil {
				session.SetPage(n)
			}
			printGallery(out, session.Gallery())
		case "goto":
			session.GoToPage(arg)
			printGallery(out, session.Gallery())
		case "next":
			session.SetPage(session.View().Page() + 1)
			printGallery(out, session.Gallery())
		case "prev":
			session.SetPage(session.View().Page() - 1)
			printGallery(out, session.Gallery())
		case "first":
			session.SetPage(1)
			printGallery(out, session.Gallery())
		case "last":
			session.SetPage(session.View().PageCount())
			printGallery(out, session.Gallery())
		case "open", "o":
			n, err := strconv.Atoi(arg)
			if err != nil || !session.OpenDetail(n-1) {
				fmt.Fprintln(out, "no such product on this view")
				continue
			}
			printDetail(out, session)
		case "close":
			session.CloseDetail()
			printGallery(out, session.Gallery())
		case "left":
			session.PrevImage()
			printDetail(out, session)
		case "right":
			session.NextImage()
			printDetail(out, session)
		case "add":
			if arg == "" {
				if session.AddOpenToCart(ctx) {
					fmt.Fprintln(out, "added to inquiry list")
				}
				printDetail(out, session)
				continue
			}
			addByPosition(ctx, out, session, arg)
		case "remove", "rm":
			removeByPosition(ctx, out, session, arg)
		case "cart", "c":
			session.OpenCart()
			printCart(out, session.CartModal())
		case "email":
			cv := session.CartModal()
			fmt.Fprintln(out, cv.MailtoLink)
		case "inquire":
			link, ok := session.EmailOpenInquiry(ctx)
			if !ok {
				fmt.Fprintln(out, "open a product first")
				continue
			}
			fmt.Fprintln(out, link)
		default:
			fmt.Fprintf(out, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return scanner.Err()
}

func addByPosition(ctx context.Context, out io.Writer, session *browse.Session, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(out, "add takes a product number")
		return
	}
	filtered := session.View().Filtered()
	if n < 1 || n > len(filtered) {
		fmt.Fprintln(out, "no such product on this view")
		return
	}
	if session.AddToCart(ctx, filtered[n-1].ID) {
		fmt.Fprintf(out, "added %q to inquiry list\n", filtered[n-1].Name)
	} else {
		fmt.Fprintln(out, "already in inquiry list")
	}
}

func removeByPosition(ctx context.Context, out io.Writer, session *browse.Session, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(out, "remove takes a cart item number")
		return
	}
	items := session.Cart().Items()
	if n < 1 || n > len(items) {
		fmt.Fprintln(out, "no such cart item")
		return
	}
	session.RemoveFromCart(ctx, items[n-1].ID)
	printCart(out, session.CartModal())
}

func printGallery(out io.Writer, gv browse.GalleryView) {
	if gv.Empty {
		fmt.Fprintln(out, "no products match the current search")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Name", "Price", "In list"})
	for _, card := range gv.Cards {
		mark := ""
		if card.InCart {
			mark = "x"
		}
		t.AppendRow(table.Row{card.FilteredIndex + 1, card.Name, card.PriceLabel, mark})
	}
	t.Render()

	p := gv.Pagination
	labels := make([]string, len(p.Window))
	for i, n := range p.Window {
		if n == p.Current {
			labels[i] = fmt.Sprintf("[%d]", n)
		} else {
			labels[i] = strconv.Itoa(n)
		}
	}
	fmt.Fprintf(out, "page %d/%d  %s  (cart: %d)\n",
		p.Current, p.PageCount, strings.Join(labels, " "), gv.CartCount)
}

func printDetail(out io.Writer, session *browse.Session) {
	dv, ok := session.Detail()
	if !ok {
		fmt.Fprintln(out, "no product open")
		return
	}
	fmt.Fprintf(out, "%s  %s\n", dv.Name, dv.PriceLabel)
	fmt.Fprintf(out, "[%s]  %s\n", dv.CartButtonLabel, dv.ImageLabel)
	if dv.ImageIndex < len(dv.Images) {
		fmt.Fprintln(out, dv.Images[dv.ImageIndex])
	}
	if dv.Description != "" {
		fmt.Fprintln(out, dv.Description)
	}
}

func printCart(out io.Writer, cv browse.CartView) {
	if cv.Empty {
		fmt.Fprintln(out, "your inquiry list is empty")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Name", "Price"})
	for i, item := range cv.Items {
		t.AppendRow(table.Row{i + 1, item.Name, item.PriceLabel})
	}
	t.AppendFooter(table.Row{"", "Total", cv.TotalLabel})
	t.Render()
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `commands:
  search <text>      filter products by name
  page <n> | goto <n>  jump to a page (clamped)
  first | prev | next | last
  open <n> | close   product detail by number
  left | right       previous / next image
  add [n]            add open product, or product n, to the inquiry list
  remove <n>         remove cart item n
  cart               show the inquiry list
  email              mailto link for the current inquiry list
  inquire            add open product and print the mailto link
  quit
`)
}
